package dispatch

import (
	"context"
	"fmt"

	"github.com/saharshpoddar/learning-gateway/internal/format"
)

func (d *Dispatcher) registerJiraTools() {
	d.register(toolSpec{
		Name:        "jira_search",
		Product:     ProductJira,
		Description: "Search issues with JQL or free text",
		Required:    []string{"query"},
		Numeric:     []string{"maxResults"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			issues, err := d.jira.SearchIssues(ctx, args["query"], intArg(args, "maxResults"))
			if err != nil {
				return "", err
			}
			return format.JiraIssueList(issues), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_get_issue",
		Product:     ProductJira,
		Description: "Fetch one issue by key",
		Required:    []string{"issueKey"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			issue, err := d.jira.GetIssue(ctx, args["issueKey"])
			if err != nil {
				return "", err
			}
			return format.JiraIssueDetail(issue), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_create_issue",
		Product:     ProductJira,
		Description: "Create an issue in a project",
		Required:    []string{"projectKey", "issueType", "summary"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			key, err := d.jira.CreateIssue(ctx, args["projectKey"], args["issueType"], args["summary"], args["description"])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Created issue %s.", key), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_update_issue",
		Product:     ProductJira,
		Description: "Update an issue's summary or description",
		Required:    []string{"issueKey"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			if err := d.jira.UpdateIssue(ctx, args["issueKey"], args["summary"], args["description"]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated issue %s.", args["issueKey"]), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_list_transitions",
		Product:     ProductJira,
		Description: "List the workflow transitions available for an issue",
		Required:    []string{"issueKey"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			transitions, err := d.jira.ListTransitions(ctx, args["issueKey"])
			if err != nil {
				return "", err
			}
			return format.JiraTransitionList(args["issueKey"], transitions), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_transition_issue",
		Product:     ProductJira,
		Description: "Move an issue through a named workflow transition",
		Required:    []string{"issueKey", "transition"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			if err := d.jira.TransitionIssue(ctx, args["issueKey"], args["transition"]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Transitioned %s via %q.", args["issueKey"], args["transition"]), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_list_projects",
		Product:     ProductJira,
		Description: "List visible projects",
		Handler: func(ctx context.Context, _ map[string]string) (string, error) {
			projects, err := d.jira.ListProjects(ctx)
			if err != nil {
				return "", err
			}
			return format.JiraProjectList(projects), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_get_active_sprint",
		Product:     ProductJira,
		Description: "Fetch the active sprint for a board",
		Required:    []string{"boardId"},
		Numeric:     []string{"boardId"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			sprint, err := d.jira.GetActiveSprint(ctx, args["boardId"])
			if err != nil {
				return "", err
			}
			return format.JiraSprintDetail(sprint), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_list_sprint_issues",
		Product:     ProductJira,
		Description: "List the issues in a sprint",
		Required:    []string{"sprintId"},
		Numeric:     []string{"sprintId", "maxResults"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			issues, err := d.jira.ListSprintIssues(ctx, args["sprintId"], intArg(args, "maxResults"))
			if err != nil {
				return "", err
			}
			return format.JiraIssueList(issues), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_add_comment",
		Product:     ProductJira,
		Description: "Add a comment to an issue",
		Required:    []string{"issueKey", "body"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			comment, err := d.jira.AddComment(ctx, args["issueKey"], args["body"])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Added comment %s to %s.", comment.ID, args["issueKey"]), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_get_comments",
		Product:     ProductJira,
		Description: "List the comments on an issue",
		Required:    []string{"issueKey"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			comments, err := d.jira.GetComments(ctx, args["issueKey"])
			if err != nil {
				return "", err
			}
			return format.JiraCommentList(args["issueKey"], comments), nil
		},
	})

	d.register(toolSpec{
		Name:        "jira_assign_issue",
		Product:     ProductJira,
		Description: "Assign an issue to a user",
		Required:    []string{"issueKey", "assignee"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			if err := d.jira.AssignIssue(ctx, args["issueKey"], args["assignee"]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Assigned %s to %s.", args["issueKey"], args["assignee"]), nil
		},
	})
}
