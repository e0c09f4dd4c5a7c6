package format

import (
	"fmt"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/atlassian"
)

// BitbucketRepoDetail renders one repository as a detail block.
func BitbucketRepoDetail(repo atlassian.BitbucketRepo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s — %s\n\n", repo.Slug, repo.Name))
	sb.WriteString(fmt.Sprintf("Language: %s\n", orDash(repo.Language)))
	sb.WriteString(fmt.Sprintf("Main branch: %s\n", orDash(repo.MainBranch)))
	visibility := "public"
	if repo.IsPrivate {
		visibility = "private"
	}
	sb.WriteString(fmt.Sprintf("Visibility: %s\n", visibility))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", orDash(repo.Updated)))
	if repo.Description != "" {
		sb.WriteString("\n" + repo.Description + "\n")
	}
	return sb.String()
}

// BitbucketRepoList renders repositories as a summary table.
func BitbucketRepoList(repos []atlassian.BitbucketRepo) string {
	if len(repos) == 0 {
		return "No repositories found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Slug | Name | Language | Main branch |\n")
	sb.WriteString("|------|------|----------|-------------|\n")
	for _, r := range repos {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			r.Slug, cell(r.Name), cell(r.Language), cell(r.MainBranch)))
	}
	sb.WriteString(fmt.Sprintf("\n%d repositories\n", len(repos)))
	return sb.String()
}

// BitbucketPRDetail renders one pull request as a detail block.
func BitbucketPRDetail(pr atlassian.BitbucketPullRequest) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## #%d — %s\n\n", pr.ID, pr.Title))
	sb.WriteString(fmt.Sprintf("State: %s\n", orDash(pr.State)))
	sb.WriteString(fmt.Sprintf("Author: %s\n", orUnassigned(pr.Author)))
	sb.WriteString(fmt.Sprintf("Source: %s\n", orDash(pr.SourceBranch)))
	sb.WriteString(fmt.Sprintf("Destination: %s\n", orDash(pr.DestBranch)))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", orDash(pr.Updated)))
	if pr.Description != "" {
		sb.WriteString("\n" + pr.Description + "\n")
	}
	return sb.String()
}

// BitbucketPRList renders pull requests as a summary table.
func BitbucketPRList(prs []atlassian.BitbucketPullRequest) string {
	if len(prs) == 0 {
		return "No pull requests found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| # | Title | State | Author | Source |\n")
	sb.WriteString("|---|-------|-------|--------|--------|\n")
	for _, pr := range prs {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			pr.ID, cell(pr.Title), cell(pr.State), cell(orUnassigned(pr.Author)), cell(pr.SourceBranch)))
	}
	sb.WriteString(fmt.Sprintf("\n%d pull request(s)\n", len(prs)))
	return sb.String()
}

// BitbucketBranchList renders branch heads.
func BitbucketBranchList(branches []atlassian.BitbucketBranch) string {
	if len(branches) == 0 {
		return "No branches found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Branch | Head |\n")
	sb.WriteString("|--------|------|\n")
	for _, b := range branches {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", cell(b.Name), cell(shortHash(b.Target))))
	}
	return sb.String()
}

// BitbucketCommitList renders recent commits.
func BitbucketCommitList(commits []atlassian.BitbucketCommit) string {
	if len(commits) == 0 {
		return "No commits found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Hash | Author | Message |\n")
	sb.WriteString("|------|--------|--------|\n")
	for _, c := range commits {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			shortHash(c.Hash), cell(orUnassigned(c.Author)), cell(c.Message)))
	}
	return sb.String()
}

// BitbucketCodeSearchList renders code-search hits.
func BitbucketCodeSearchList(query string, results []atlassian.CodeSearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No code matches for %q.\n", query)
	}
	var sb strings.Builder
	sb.WriteString("| Repository | Path | Matches |\n")
	sb.WriteString("|------------|------|---------|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n", cell(r.Repo), cell(r.Path), r.Matches))
	}
	return sb.String()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
