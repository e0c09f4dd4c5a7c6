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
	bitbucketDefaultPageLen = 25
	bitbucketMaxPageLen     = 100
)

// BitbucketClient wraps the Bitbucket 2.0 REST API.
type BitbucketClient struct {
	baseURL string
	engine  engineDoer
}

// NewBitbucketClient builds a client over the shared engine.
func NewBitbucketClient(baseURL string, engine engineDoer) *BitbucketClient {
	return &BitbucketClient{baseURL: baseURL, engine: engine}
}

type bitbucketRepoBody struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	IsPrivate   bool   `json:"is_private"`
	UpdatedOn   string `json:"updated_on"`
	MainBranch  struct {
		Name string `json:"name"`
	} `json:"mainbranch"`
}

func (b bitbucketRepoBody) record() BitbucketRepo {
	return BitbucketRepo{
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		Language:    b.Language,
		IsPrivate:   b.IsPrivate,
		MainBranch:  b.MainBranch.Name,
		Updated:     b.UpdatedOn,
	}
}

type bitbucketPRBody struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
	Author      struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
	Source struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"source"`
	Destination struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	} `json:"destination"`
}

func (b bitbucketPRBody) record() BitbucketPullRequest {
	return BitbucketPullRequest{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		State:        b.State,
		Author:       b.Author.DisplayName,
		SourceBranch: b.Source.Branch.Name,
		DestBranch:   b.Destination.Branch.Name,
		Created:      b.CreatedOn,
		Updated:      b.UpdatedOn,
	}
}

// ListRepos lists the repositories in a workspace.
func (c *BitbucketClient) ListRepos(ctx context.Context, workspace string, pageLen int) ([]BitbucketRepo, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("pagelen", strconv.Itoa(clampMaxResults(pageLen, bitbucketDefaultPageLen, bitbucketMaxPageLen)))
	var out struct {
		Values []bitbucketRepoBody `json:"values"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/2.0/repositories/"+url.PathEscape(workspace), params, nil, &out); err != nil {
		return nil, err
	}
	repos := make([]BitbucketRepo, 0, len(out.Values))
	for _, body := range out.Values {
		repos = append(repos, body.record())
	}
	return repos, nil
}

// GetRepo fetches one repository.
func (c *BitbucketClient) GetRepo(ctx context.Context, workspace, repoSlug string) (BitbucketRepo, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return BitbucketRepo{}, err
	}
	if err := requireArg("repoSlug", repoSlug); err != nil {
		return BitbucketRepo{}, err
	}
	var out bitbucketRepoBody
	path := "/2.0/repositories/" + url.PathEscape(workspace) + "/" + url.PathEscape(repoSlug)
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, nil, nil, &out); err != nil {
		return BitbucketRepo{}, err
	}
	return out.record(), nil
}

// validPRStates are the state filters the API accepts.
var validPRStates = map[string]bool{"OPEN": true, "MERGED": true, "DECLINED": true, "SUPERSEDED": true}

// ListPullRequests lists pull requests, optionally filtered by state.
func (c *BitbucketClient) ListPullRequests(ctx context.Context, workspace, repoSlug, state string, pageLen int) ([]BitbucketPullRequest, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return nil, err
	}
	if err := requireArg("repoSlug", repoSlug); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("pagelen", strconv.Itoa(clampMaxResults(pageLen, bitbucketDefaultPageLen, bitbucketMaxPageLen)))
	if state != "" {
		normalized := strings.ToUpper(strings.TrimSpace(state))
		if !validPRStates[normalized] {
			return nil, fmt.Errorf("state must be one of OPEN, MERGED, DECLINED, SUPERSEDED; got %q", state)
		}
		params.Set("state", normalized)
	}
	var out struct {
		Values []bitbucketPRBody `json:"values"`
	}
	path := "/2.0/repositories/" + url.PathEscape(workspace) + "/" + url.PathEscape(repoSlug) + "/pullrequests"
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return nil, err
	}
	prs := make([]BitbucketPullRequest, 0, len(out.Values))
	for _, body := range out.Values {
		prs = append(prs, body.record())
	}
	return prs, nil
}

// GetPullRequest fetches one pull request by numeric id.
func (c *BitbucketClient) GetPullRequest(ctx context.Context, workspace, repoSlug, prID string) (BitbucketPullRequest, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return BitbucketPullRequest{}, err
	}
	if err := requireArg("repoSlug", repoSlug); err != nil {
		return BitbucketPullRequest{}, err
	}
	id, err := requirePositive("prId", prID)
	if err != nil {
		return BitbucketPullRequest{}, err
	}
	var out bitbucketPRBody
	path := fmt.Sprintf("/2.0/repositories/%s/%s/pullrequests/%d", url.PathEscape(workspace), url.PathEscape(repoSlug), id)
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, nil, nil, &out); err != nil {
		return BitbucketPullRequest{}, err
	}
	return out.record(), nil
}

// CreatePullRequest opens a pull request from sourceBranch to destBranch.
func (c *BitbucketClient) CreatePullRequest(ctx context.Context, workspace, repoSlug, title, sourceBranch, destBranch, description string) (BitbucketPullRequest, error) {
	for _, arg := range []struct{ name, value string }{
		{"workspace", workspace}, {"repoSlug", repoSlug}, {"title", title}, {"sourceBranch", sourceBranch},
	} {
		if err := requireArg(arg.name, arg.value); err != nil {
			return BitbucketPullRequest{}, err
		}
	}
	if destBranch == "" {
		destBranch = "main"
	}
	payload := map[string]any{
		"title":       title,
		"description": description,
		"source":      map[string]any{"branch": map[string]string{"name": sourceBranch}},
		"destination": map[string]any{"branch": map[string]string{"name": destBranch}},
	}
	var out bitbucketPRBody
	path := "/2.0/repositories/" + url.PathEscape(workspace) + "/" + url.PathEscape(repoSlug) + "/pullrequests"
	if err := c.engine.Do(ctx, http.MethodPost, c.baseURL, path, nil, payload, &out); err != nil {
		return BitbucketPullRequest{}, err
	}
	return out.record(), nil
}

// CodeSearch searches code across a workspace.
func (c *BitbucketClient) CodeSearch(ctx context.Context, workspace, query string, pageLen int) ([]CodeSearchResult, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return nil, err
	}
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("pagelen", strconv.Itoa(clampMaxResults(pageLen, bitbucketDefaultPageLen, bitbucketMaxPageLen)))
	var out struct {
		Values []struct {
			ContentMatchCount int `json:"content_match_count"`
			File              struct {
				Path string `json:"path"`
				Commit struct {
					Repository struct {
						FullName string `json:"full_name"`
					} `json:"repository"`
				} `json:"commit"`
			} `json:"file"`
		} `json:"values"`
	}
	path := "/2.0/workspaces/" + url.PathEscape(workspace) + "/search/code"
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return nil, err
	}
	results := make([]CodeSearchResult, 0, len(out.Values))
	for _, v := range out.Values {
		results = append(results, CodeSearchResult{
			Repo:    v.File.Commit.Repository.FullName,
			Path:    v.File.Path,
			Matches: v.ContentMatchCount,
		})
	}
	return results, nil
}

// ListBranches lists branch heads in a repository.
func (c *BitbucketClient) ListBranches(ctx context.Context, workspace, repoSlug string, pageLen int) ([]BitbucketBranch, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return nil, err
	}
	if err := requireArg("repoSlug", repoSlug); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("pagelen", strconv.Itoa(clampMaxResults(pageLen, bitbucketDefaultPageLen, bitbucketMaxPageLen)))
	var out struct {
		Values []struct {
			Name   string `json:"name"`
			Target struct {
				Hash string `json:"hash"`
			} `json:"target"`
		} `json:"values"`
	}
	path := "/2.0/repositories/" + url.PathEscape(workspace) + "/" + url.PathEscape(repoSlug) + "/refs/branches"
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return nil, err
	}
	branches := make([]BitbucketBranch, 0, len(out.Values))
	for _, v := range out.Values {
		branches = append(branches, BitbucketBranch{Name: v.Name, Target: v.Target.Hash})
	}
	return branches, nil
}

// GetCommits lists recent commits on a repository.
func (c *BitbucketClient) GetCommits(ctx context.Context, workspace, repoSlug, branch string, pageLen int) ([]BitbucketCommit, error) {
	if err := requireArg("workspace", workspace); err != nil {
		return nil, err
	}
	if err := requireArg("repoSlug", repoSlug); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("pagelen", strconv.Itoa(clampMaxResults(pageLen, bitbucketDefaultPageLen, bitbucketMaxPageLen)))
	path := "/2.0/repositories/" + url.PathEscape(workspace) + "/" + url.PathEscape(repoSlug) + "/commits"
	if branch != "" {
		path += "/" + url.PathEscape(branch)
	}
	var out struct {
		Values []struct {
			Hash   string `json:"hash"`
			Date   string `json:"date"`
			Message string `json:"message"`
			Author struct {
				User struct {
					DisplayName string `json:"display_name"`
				} `json:"user"`
				Raw string `json:"raw"`
			} `json:"author"`
		} `json:"values"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, path, params, nil, &out); err != nil {
		return nil, err
	}
	commits := make([]BitbucketCommit, 0, len(out.Values))
	for _, v := range out.Values {
		author := v.Author.User.DisplayName
		if author == "" {
			author = v.Author.Raw
		}
		commits = append(commits, BitbucketCommit{Hash: v.Hash, Author: author, Message: v.Message, Date: v.Date})
	}
	return commits, nil
}
