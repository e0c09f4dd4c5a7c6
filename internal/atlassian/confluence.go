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
	confluenceDefaultLimit = 25
	confluenceMaxLimit     = 100
)

// ConfluenceClient wraps the Confluence REST API.
type ConfluenceClient struct {
	baseURL string
	engine  engineDoer
}

// NewConfluenceClient builds a client over the shared engine.
func NewConfluenceClient(baseURL string, engine engineDoer) *ConfluenceClient {
	return &ConfluenceClient{baseURL: baseURL, engine: engine}
}

type confluencePageBody struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Version struct {
		Number int `json:"number"`
		By     struct {
			DisplayName string `json:"displayName"`
		} `json:"by"`
		When string `json:"when"`
	} `json:"version"`
	Body struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
}

func (b confluencePageBody) record() ConfluencePage {
	return ConfluencePage{
		ID:       b.ID,
		Title:    b.Title,
		SpaceKey: b.Space.Key,
		Version:  b.Version.Number,
		Body:     b.Body.Storage.Value,
		Author:   b.Version.By.DisplayName,
		Updated:  b.Version.When,
	}
}

// Search runs a CQL query; free text is wrapped into a text-match clause.
func (c *ConfluenceClient) Search(ctx context.Context, query string, limit int) ([]ConfluencePage, error) {
	if err := requireArg("query", query); err != nil {
		return nil, err
	}
	cql := query
	if !looksLikeCQL(query) {
		cql = fmt.Sprintf("text ~ %q", query)
	}
	params := url.Values{}
	params.Set("cql", cql)
	params.Set("limit", strconv.Itoa(clampMaxResults(limit, confluenceDefaultLimit, confluenceMaxLimit)))
	params.Set("expand", "space,version")

	var out struct {
		Results []confluencePageBody `json:"results"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/content/search", params, nil, &out); err != nil {
		return nil, err
	}
	pages := make([]ConfluencePage, 0, len(out.Results))
	for _, body := range out.Results {
		pages = append(pages, body.record())
	}
	return pages, nil
}

func looksLikeCQL(q string) bool {
	lower := strings.ToLower(q)
	for _, marker := range []string{"=", "~", " and ", " or ", "type ", "space "} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// GetPage fetches one page with its storage body.
func (c *ConfluenceClient) GetPage(ctx context.Context, pageID string) (ConfluencePage, error) {
	if _, err := requirePositive("pageId", pageID); err != nil {
		return ConfluencePage{}, err
	}
	params := url.Values{}
	params.Set("expand", "body.storage,version,space")
	var out confluencePageBody
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/content/"+url.PathEscape(pageID), params, nil, &out); err != nil {
		return ConfluencePage{}, err
	}
	return out.record(), nil
}

// CreatePage creates a page in the named space and returns the new record.
func (c *ConfluenceClient) CreatePage(ctx context.Context, spaceKey, title, body string) (ConfluencePage, error) {
	if err := requireArg("spaceKey", spaceKey); err != nil {
		return ConfluencePage{}, err
	}
	if err := requireArg("title", title); err != nil {
		return ConfluencePage{}, err
	}
	payload := map[string]any{
		"type":  "page",
		"title": title,
		"space": map[string]string{"key": spaceKey},
		"body": map[string]any{
			"storage": map[string]string{"value": body, "representation": "storage"},
		},
	}
	var out confluencePageBody
	if err := c.engine.Do(ctx, http.MethodPost, c.baseURL, "/rest/api/content", nil, payload, &out); err != nil {
		return ConfluencePage{}, err
	}
	return out.record(), nil
}

// UpdatePage replaces the page body. The version number increments
// monotonically from the current stored version.
func (c *ConfluenceClient) UpdatePage(ctx context.Context, pageID, title, body string) (ConfluencePage, error) {
	current, err := c.GetPage(ctx, pageID)
	if err != nil {
		return ConfluencePage{}, err
	}
	if title == "" {
		title = current.Title
	}
	payload := map[string]any{
		"type":    "page",
		"title":   title,
		"version": map[string]int{"number": current.Version + 1},
		"body": map[string]any{
			"storage": map[string]string{"value": body, "representation": "storage"},
		},
	}
	var out confluencePageBody
	if err := c.engine.Do(ctx, http.MethodPut, c.baseURL, "/rest/api/content/"+url.PathEscape(pageID), nil, payload, &out); err != nil {
		return ConfluencePage{}, err
	}
	return out.record(), nil
}

// ListSpaces returns the spaces visible to the account.
func (c *ConfluenceClient) ListSpaces(ctx context.Context, limit int) ([]ConfluenceSpace, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampMaxResults(limit, confluenceDefaultLimit, confluenceMaxLimit)))
	var out struct {
		Results []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"results"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/space", params, nil, &out); err != nil {
		return nil, err
	}
	spaces := make([]ConfluenceSpace, 0, len(out.Results))
	for _, s := range out.Results {
		spaces = append(spaces, ConfluenceSpace{Key: s.Key, Name: s.Name, Type: s.Type})
	}
	return spaces, nil
}

// GetPageChildren lists the child pages of a page.
func (c *ConfluenceClient) GetPageChildren(ctx context.Context, pageID string, limit int) ([]ConfluencePage, error) {
	if _, err := requirePositive("pageId", pageID); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampMaxResults(limit, confluenceDefaultLimit, confluenceMaxLimit)))
	params.Set("expand", "space,version")
	var out struct {
		Results []confluencePageBody `json:"results"`
	}
	if err := c.engine.Do(ctx, http.MethodGet, c.baseURL, "/rest/api/content/"+url.PathEscape(pageID)+"/child/page", params, nil, &out); err != nil {
		return nil, err
	}
	children := make([]ConfluencePage, 0, len(out.Results))
	for _, body := range out.Results {
		children = append(children, body.record())
	}
	return children, nil
}

// DeletePage removes a page.
func (c *ConfluenceClient) DeletePage(ctx context.Context, pageID string) error {
	if _, err := requirePositive("pageId", pageID); err != nil {
		return err
	}
	return c.engine.Do(ctx, http.MethodDelete, c.baseURL, "/rest/api/content/"+url.PathEscape(pageID), nil, nil, nil)
}
