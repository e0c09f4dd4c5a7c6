package format

import (
	"fmt"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/atlassian"
)

// JiraIssueDetail renders one issue as a detail block.
func JiraIssueDetail(issue atlassian.JiraIssue) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s — %s\n\n", issue.Key, issue.Summary))
	sb.WriteString(fmt.Sprintf("Status: %s\n", orDash(issue.Status)))
	sb.WriteString(fmt.Sprintf("Type: %s\n", orDash(issue.IssueType)))
	sb.WriteString(fmt.Sprintf("Priority: %s\n", orDash(issue.Priority)))
	sb.WriteString(fmt.Sprintf("Assignee: %s\n", orUnassigned(issue.Assignee)))
	sb.WriteString(fmt.Sprintf("Reporter: %s\n", orUnassigned(issue.Reporter)))
	if len(issue.Labels) > 0 {
		sb.WriteString(fmt.Sprintf("Labels: %s\n", strings.Join(issue.Labels, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Updated: %s\n", orDash(issue.Updated)))
	if issue.Description != "" {
		sb.WriteString("\n" + issue.Description + "\n")
	}
	return sb.String()
}

// JiraIssueList renders issues as a summary table.
func JiraIssueList(issues []atlassian.JiraIssue) string {
	if len(issues) == 0 {
		return "No issues found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Key | Summary | Status | Assignee |\n")
	sb.WriteString("|-----|---------|--------|----------|\n")
	for _, issue := range issues {
		assignee := issue.Assignee
		if assignee == "" {
			assignee = "_Unassigned_"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			issue.Key, cell(issue.Summary), cell(issue.Status), cell(assignee)))
	}
	sb.WriteString(fmt.Sprintf("\n%d issue(s)\n", len(issues)))
	return sb.String()
}

// JiraProjectList renders projects as a summary table.
func JiraProjectList(projects []atlassian.JiraProject) string {
	if len(projects) == 0 {
		return "No projects found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Key | Name | Lead |\n")
	sb.WriteString("|-----|------|------|\n")
	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", p.Key, cell(p.Name), cell(orUnassigned(p.Lead))))
	}
	return sb.String()
}

// JiraSprintDetail renders the active sprint block.
func JiraSprintDetail(sprint atlassian.JiraSprint) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Sprint %d — %s\n\n", sprint.ID, sprint.Name))
	sb.WriteString(fmt.Sprintf("State: %s\n", orDash(sprint.State)))
	sb.WriteString(fmt.Sprintf("Start: %s\n", orDash(sprint.StartDate)))
	sb.WriteString(fmt.Sprintf("End: %s\n", orDash(sprint.EndDate)))
	if sprint.Goal != "" {
		sb.WriteString("\nGoal: " + sprint.Goal + "\n")
	}
	return sb.String()
}

// JiraCommentList renders issue comments.
func JiraCommentList(issueKey string, comments []atlassian.JiraComment) string {
	if len(comments) == 0 {
		return fmt.Sprintf("No comments on %s.\n", issueKey)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Comments on %s\n\n", issueKey))
	for _, c := range comments {
		sb.WriteString(fmt.Sprintf("**%s** (%s):\n%s\n\n", orUnassigned(c.Author), orDash(c.Created), c.Body))
	}
	return sb.String()
}

// JiraTransitionList renders available workflow transitions.
func JiraTransitionList(issueKey string, transitions []atlassian.JiraTransition) string {
	if len(transitions) == 0 {
		return fmt.Sprintf("No transitions available for %s.\n", issueKey)
	}
	var sb strings.Builder
	sb.WriteString("| ID | Transition | Target status |\n")
	sb.WriteString("|----|------------|---------------|\n")
	for _, t := range transitions {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", t.ID, cell(t.Name), cell(t.To)))
	}
	return sb.String()
}
