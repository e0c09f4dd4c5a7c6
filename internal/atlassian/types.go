// Package atlassian wraps the Jira, Confluence, and Bitbucket REST APIs.
// Each client maps domain operations onto the shared HTTP engine and decodes
// responses into flat records. Absent values are empty strings or empty
// slices, never nil-with-meaning.
package atlassian

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// engineDoer is the slice of the HTTP engine the clients depend on. It lets
// tests substitute a recording fake without standing up a server.
type engineDoer interface {
	Do(ctx context.Context, method, baseURL, path string, query url.Values, body, out any) error
}

// JiraIssue is the flattened view of an issue the formatters need.
type JiraIssue struct {
	Key         string
	Summary     string
	Description string
	Status      string
	Priority    string
	IssueType   string
	Assignee    string
	Reporter    string
	Created     string
	Updated     string
	Labels      []string
}

// JiraProject identifies a project.
type JiraProject struct {
	Key  string
	Name string
	Lead string
}

// JiraComment is a single issue comment.
type JiraComment struct {
	ID      string
	Author  string
	Body    string
	Created string
}

// JiraSprint is a board sprint.
type JiraSprint struct {
	ID        int
	Name      string
	State     string
	StartDate string
	EndDate   string
	Goal      string
}

// JiraTransition is an available workflow transition.
type JiraTransition struct {
	ID   string
	Name string
	To   string
}

// ConfluencePage is the flattened view of a page.
type ConfluencePage struct {
	ID       string
	Title    string
	SpaceKey string
	Version  int
	Body     string
	Author   string
	Updated  string
}

// ConfluenceSpace identifies a space.
type ConfluenceSpace struct {
	Key  string
	Name string
	Type string
}

// BitbucketRepo is a repository summary.
type BitbucketRepo struct {
	Slug        string
	Name        string
	Description string
	Language    string
	IsPrivate   bool
	MainBranch  string
	Updated     string
}

// BitbucketPullRequest is a pull request summary.
type BitbucketPullRequest struct {
	ID           int
	Title        string
	Description  string
	State        string
	Author       string
	SourceBranch string
	DestBranch   string
	Created      string
	Updated      string
}

// BitbucketBranch is a branch head.
type BitbucketBranch struct {
	Name   string
	Target string
}

// BitbucketCommit is a commit summary.
type BitbucketCommit struct {
	Hash    string
	Author  string
	Message string
	Date    string
}

// CodeSearchResult is one code-search hit.
type CodeSearchResult struct {
	Repo    string
	Path    string
	Matches int
}

// requireArg rejects blank required inputs before any network traffic.
func requireArg(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be blank", name)
	}
	return nil
}

// requirePositive parses a numeric id and rejects non-positive values.
func requirePositive(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}
	return n, nil
}

// clampMaxResults bounds page sizes; zero means the default.
func clampMaxResults(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
