package dispatch

import (
	"context"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/format"
)

// workspaceArg falls back to the configured default workspace.
func (d *Dispatcher) workspaceArg(args map[string]string) string {
	if ws := strings.TrimSpace(args["workspace"]); ws != "" {
		return ws
	}
	return d.cfg.BitbucketWorkspace
}

func (d *Dispatcher) registerBitbucketTools() {
	d.register(toolSpec{
		Name:        "bitbucket_list_repos",
		Product:     ProductBitbucket,
		Description: "List repositories in a workspace",
		Required:    []string{"workspace"},
		Numeric:     []string{"pageLen"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			repos, err := d.bitbucket.ListRepos(ctx, d.workspaceArg(args), intArg(args, "pageLen"))
			if err != nil {
				return "", err
			}
			return format.BitbucketRepoList(repos), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_get_repo",
		Product:     ProductBitbucket,
		Description: "Fetch one repository",
		Required:    []string{"workspace", "repoSlug"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			repo, err := d.bitbucket.GetRepo(ctx, d.workspaceArg(args), args["repoSlug"])
			if err != nil {
				return "", err
			}
			return format.BitbucketRepoDetail(repo), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_list_pull_requests",
		Product:     ProductBitbucket,
		Description: "List pull requests, optionally filtered by state",
		Required:    []string{"workspace", "repoSlug"},
		Numeric:     []string{"pageLen"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			prs, err := d.bitbucket.ListPullRequests(ctx, d.workspaceArg(args), args["repoSlug"], args["state"], intArg(args, "pageLen"))
			if err != nil {
				return "", err
			}
			return format.BitbucketPRList(prs), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_get_pull_request",
		Product:     ProductBitbucket,
		Description: "Fetch one pull request",
		Required:    []string{"workspace", "repoSlug", "prId"},
		Numeric:     []string{"prId"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			pr, err := d.bitbucket.GetPullRequest(ctx, d.workspaceArg(args), args["repoSlug"], args["prId"])
			if err != nil {
				return "", err
			}
			return format.BitbucketPRDetail(pr), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_create_pull_request",
		Product:     ProductBitbucket,
		Description: "Open a pull request",
		Required:    []string{"workspace", "repoSlug", "title", "sourceBranch"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			pr, err := d.bitbucket.CreatePullRequest(ctx, d.workspaceArg(args), args["repoSlug"],
				args["title"], args["sourceBranch"], args["destBranch"], args["description"])
			if err != nil {
				return "", err
			}
			return format.BitbucketPRDetail(pr), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_code_search",
		Product:     ProductBitbucket,
		Description: "Search code across a workspace",
		Required:    []string{"workspace", "query"},
		Numeric:     []string{"pageLen"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			results, err := d.bitbucket.CodeSearch(ctx, d.workspaceArg(args), args["query"], intArg(args, "pageLen"))
			if err != nil {
				return "", err
			}
			return format.BitbucketCodeSearchList(args["query"], results), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_list_branches",
		Product:     ProductBitbucket,
		Description: "List branches in a repository",
		Required:    []string{"workspace", "repoSlug"},
		Numeric:     []string{"pageLen"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			branches, err := d.bitbucket.ListBranches(ctx, d.workspaceArg(args), args["repoSlug"], intArg(args, "pageLen"))
			if err != nil {
				return "", err
			}
			return format.BitbucketBranchList(branches), nil
		},
	})

	d.register(toolSpec{
		Name:        "bitbucket_get_commits",
		Product:     ProductBitbucket,
		Description: "List recent commits, optionally for one branch",
		Required:    []string{"workspace", "repoSlug"},
		Numeric:     []string{"pageLen"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			commits, err := d.bitbucket.GetCommits(ctx, d.workspaceArg(args), args["repoSlug"], args["branch"], intArg(args, "pageLen"))
			if err != nil {
				return "", err
			}
			return format.BitbucketCommitList(commits), nil
		},
	})
}
