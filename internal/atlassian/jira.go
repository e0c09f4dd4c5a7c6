package atlassian

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	jiraDefaultMaxResults = 25
	jiraMaxMaxResults     = 100
)

// JiraClient wraps the Jira REST API.
type JiraClient struct {
	baseURL string
	engine  engineDoer
}

// NewJiraClient builds a client over the shared engine.
func NewJiraClient(baseURL string, engine engineDoer) *JiraClient {
	return &JiraClient{baseURL: baseURL, engine: engine}
}

type jiraUser struct {
	DisplayName string `json:"displayName"`
}

type jiraIssueFields struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Created     string   `json:"created"`
	Updated     string   `json:"updated"`
	Status      struct {
		Name string `json:"name"`
	} `json:"status"`
	Priority struct {
		Name string `json:"name"`
	} `json:"priority"`
	IssueType struct {
		Name string `json:"name"`
	} `json:"issuetype"`
	Assignee *jiraUser `json:"assignee"`
	Reporter *jiraUser `json:"reporter"`
}

type jiraIssueBody struct {
	Key    string          `json:"key"`
	Fields jiraIssueFields `json:"fields"`
}

func (b jiraIssueBody) record() JiraIssue {
	issue := JiraIssue{
		Key:         b.Key,
		Summary:     b.Fields.Summary,
		Description: b.Fields.Description,
		Status:      b.Fields.Status.Name,
		Priority:    b.Fields.Priority.Name,
		IssueType:   b.Fields.IssueType.Name,
		Created:     b.Fields.Created,
		Updated:     b.Fields.Updated,
		Labels:      append([]string(nil), b.Fields.Labels...),
	}
	if b.Fields.Assignee != nil {
		issue.Assignee = b.Fields.Assignee.DisplayName
	}
	if b.Fields.Reporter != nil {
		issue.Reporter = b.Fields.Reporter.DisplayName
	}
	return issue
}

// SearchIssues runs a JQL query. Free text is wrapped into a text-match JQL
// clause. maxResults is clamped to the API bound.
func (c *JiraClient) SearchIssues(ctx context.Context, query string, maxResults int) ([]JiraIssue, error) {
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	jql := query
	if !looksLikeJQL(query) {
		jql = fmt.Sprintf("text ~ %q ORDER BY updated DESC", query)
	}

	params := url.Values{}
	params.Set("jql", jql)
	params.Set("maxResults", strconv.Itoa(clampMaxResults(maxResults, jiraDefaultMaxResults, jiraMaxMaxResults)))

	var out struct {
		Issues []jiraIssueBody `json:"issues"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/2/search", params, nil, &out); err != nil {
		return nil, err
	}
	issues := make([]JiraIssue, 0, len(out.Issues))
	for _, body := range out.Issues {
		issues = append(issues, body.record())
	}
	return issues, nil
}

// looksLikeJQL distinguishes structured queries from free text by the
// presence of JQL operators or known clause keywords.
func looksLikeJQL(q string) bool {
	lower := strings.ToLower(q)
	for _, marker := range []string{"=", "~", ">", "<", " in ", " order by ", " and ", " or "} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// GetIssue fetches one issue by key.
func (c *JiraClient) GetIssue(ctx context.Context, issueKey string) (JiraIssue, error) {
	if err := requireArg("issueKey", issueKey); err != nil {
		return JiraIssue{}, err
	}
	var out jiraIssueBody
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey), nil, nil, &out); err != nil {
		return JiraIssue{}, err
	}
	return out.record(), nil
}

// CreateIssue creates an issue and returns its key.
func (c *JiraClient) CreateIssue(ctx context.Context, projectKey, issueType, summary, description string) (string, error) {
	if err := requireArg("projectKey", projectKey); err != nil {
		return "", err
	}
	if err := requireArg("issueType", issueType); err != nil {
		return "", err
	}
	if err := requireArg("summary", summary); err != nil {
		return "", err
	}
	body := map[string]any{
		"fields": map[string]any{
			"project":     map[string]string{"key": projectKey},
			"issuetype":   map[string]string{"name": issueType},
			"summary":     summary,
			"description": description,
		},
	}
	var out struct {
		Key string `json:"key"`
	}
	if err := c.engine.Do(ctx, http.MethodPost, c.baseURL, "/rest/api/2/issue", nil, body, &out); err != nil {
		return "", err
	}
	return out.Key, nil
}

// UpdateIssue sets summary and/or description on an existing issue.
func (c *JiraClient) UpdateIssue(ctx context.Context, issueKey, summary, description string) error {
	if err := requireArg("issueKey", issueKey); err != nil {
		return err
	}
	fields := map[string]any{}
	if summary != "" {
		fields["summary"] = summary
	}
	if description != "" {
		fields["description"] = description
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update: provide summary or description")
	}
	return c.engine.Do(ctx, http.MethodPut, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey), nil, map[string]any{"fields": fields}, nil)
}

// ListTransitions returns the workflow transitions available for an issue.
func (c *JiraClient) ListTransitions(ctx context.Context, issueKey string) ([]JiraTransition, error) {
	if err := requireArg("issueKey", issueKey); err != nil {
		return nil, err
	}
	var out struct {
		Transitions []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			To   struct {
				Name string `json:"name"`
			} `json:"to"`
		} `json:"transitions"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey)+"/transitions", nil, nil, &out); err != nil {
		return nil, err
	}
	transitions := make([]JiraTransition, 0, len(out.Transitions))
	for _, t := range out.Transitions {
		transitions = append(transitions, JiraTransition{ID: t.ID, Name: t.Name, To: t.To.Name})
	}
	return transitions, nil
}

// TransitionIssue moves an issue through the named workflow transition.
func (c *JiraClient) TransitionIssue(ctx context.Context, issueKey, transitionName string) error {
	if err := requireArg("issueKey", issueKey); err != nil {
		return err
	}
	if err := requireArg("transition", transitionName); err != nil {
		return err
	}
	transitions, err := c.ListTransitions(ctx, issueKey)
	if err != nil {
		return err
	}
	var transitionID string
	for _, t := range transitions {
		if strings.EqualFold(t.Name, transitionName) || t.ID == transitionName {
			transitionID = t.ID
			break
		}
	}
	if transitionID == "" {
		names := make([]string, 0, len(transitions))
		for _, t := range transitions {
			names = append(names, t.Name)
		}
		return fmt.Errorf("transition %q is not available for %s (available: %s)", transitionName, issueKey, strings.Join(names, ", "))
	}
	body := map[string]any{"transition": map[string]string{"id": transitionID}}
	return c.engine.Do(ctx, http.MethodPost, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey)+"/transitions", nil, body, nil)
}

// ListProjects returns all projects visible to the account.
func (c *JiraClient) ListProjects(ctx context.Context) ([]JiraProject, error) {
	var out []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
		Lead struct {
			DisplayName string `json:"displayName"`
		} `json:"lead"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/2/project", nil, nil, &out); err != nil {
		return nil, err
	}
	projects := make([]JiraProject, 0, len(out))
	for _, p := range out {
		projects = append(projects, JiraProject{Key: p.Key, Name: p.Name, Lead: p.Lead.DisplayName})
	}
	return projects, nil
}

type jiraSprintBody struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Goal      string `json:"goal"`
}

// GetActiveSprint returns the active sprint for a board.
func (c *JiraClient) GetActiveSprint(ctx context.Context, boardID string) (JiraSprint, error) {
	id, err := requirePositive("boardId", boardID)
	if err != nil {
		return JiraSprint{}, err
	}
	params := url.Values{}
	params.Set("state", "active")
	var out struct {
		Values []jiraSprintBody `json:"values"`
	}
	path := fmt.Sprintf("/rest/agile/1.0/board/%d/sprint", id)
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return JiraSprint{}, err
	}
	if len(out.Values) == 0 {
		return JiraSprint{}, fmt.Errorf("board %d has no active sprint", id)
	}
	s := out.Values[0]
	return JiraSprint{ID: s.ID, Name: s.Name, State: s.State, StartDate: s.StartDate, EndDate: s.EndDate, Goal: s.Goal}, nil
}

// ListSprintIssues returns the issues in a sprint.
func (c *JiraClient) ListSprintIssues(ctx context.Context, sprintID string, maxResults int) ([]JiraIssue, error) {
	id, err := requirePositive("sprintId", sprintID)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("maxResults", strconv.Itoa(clampMaxResults(maxResults, jiraDefaultMaxResults, jiraMaxMaxResults)))
	var out struct {
		Issues []jiraIssueBody `json:"issues"`
	}
	path := fmt.Sprintf("/rest/agile/1.0/sprint/%d/issue", id)
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return nil, err
	}
	issues := make([]JiraIssue, 0, len(out.Issues))
	for _, body := range out.Issues {
		issues = append(issues, body.record())
	}
	return issues, nil
}

// AddComment posts a comment on an issue.
func (c *JiraClient) AddComment(ctx context.Context, issueKey, body string) (JiraComment, error) {
	if err := requireArg("issueKey", issueKey); err != nil {
		return JiraComment{}, err
	}
	if err := requireArg("body", body); err != nil {
		return JiraComment{}, err
	}
	var out struct {
		ID     string   `json:"id"`
		Author jiraUser `json:"author"`
		Body   string   `json:"body"`
	}
	if err := c.engine.Do(ctx, http.MethodPost, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey)+"/comment", nil, map[string]string{"body": body}, &out); err != nil {
		return JiraComment{}, err
	}
	return JiraComment{ID: out.ID, Author: out.Author.DisplayName, Body: out.Body}, nil
}

// GetComments lists the comments on an issue.
func (c *JiraClient) GetComments(ctx context.Context, issueKey string) ([]JiraComment, error) {
	if err := requireArg("issueKey", issueKey); err != nil {
		return nil, err
	}
	var out struct {
		Comments []struct {
			ID      string   `json:"id"`
			Author  jiraUser `json:"author"`
			Body    string   `json:"body"`
			Created string   `json:"created"`
		} `json:"comments"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey)+"/comment", nil, nil, &out); err != nil {
		return nil, err
	}
	comments := make([]JiraComment, 0, len(out.Comments))
	for _, cm := range out.Comments {
		comments = append(comments, JiraComment{ID: cm.ID, Author: cm.Author.DisplayName, Body: cm.Body, Created: cm.Created})
	}
	return comments, nil
}

// AssignIssue assigns an issue to the named account.
func (c *JiraClient) AssignIssue(ctx context.Context, issueKey, assignee string) error {
	if err := requireArg("issueKey", issueKey); err != nil {
		return err
	}
	if err := requireArg("assignee", assignee); err != nil {
		return err
	}
	return c.engine.Do(ctx, http.MethodPut, c.baseURL, "/rest/api/2/issue/"+url.PathEscape(issueKey)+"/assignee", nil, map[string]string{"name": assignee}, nil)
}
