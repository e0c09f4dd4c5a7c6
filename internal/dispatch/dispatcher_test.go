package dispatch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharshpoddar/learning-gateway/internal/config"
	"github.com/saharshpoddar/learning-gateway/internal/httpx"
)

func testConfig() *config.Config {
	return &config.Config{
		InstanceName:   "test",
		Deployment:     config.DeploymentCloud,
		Credentials:    config.Credentials{Email: "ops@example.com", Secret: "token", AuthType: config.AuthAPIToken},
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    5 * time.Second,
		Preferences:    config.Preferences{MaxRetries: 3, TimeoutSeconds: 30},
	}
}

func newDispatcher(t *testing.T, cfg *config.Config) *Dispatcher {
	t.Helper()
	d, err := New(cfg, httpx.NewEngine(cfg))
	require.NoError(t, err)
	return d
}

func TestDispatch_UnknownTool(t *testing.T) {
	d := newDispatcher(t, testConfig())
	resp := d.Dispatch(context.Background(), "jira_explode", nil)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Unknown tool")
	assert.Contains(t, resp.Error, "list-tools")
	assert.Empty(t, resp.Content, "error responses carry no content")
}

func TestDispatch_MissingRequiredArgument(t *testing.T) {
	d := newDispatcher(t, testConfig())
	resp := d.Dispatch(context.Background(), "bitbucket_get_pull_request", map[string]string{
		"workspace": "acme",
		"repoSlug":  "api",
	})
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required argument: 'prId'", resp.Error)
	assert.Equal(t, ProductBitbucket, resp.Product)
}

func TestDispatch_NumericArgumentValidation(t *testing.T) {
	cfg := testConfig()
	cfg.Bitbucket = config.ProductConfig{URL: "https://api.bitbucket.org", Enabled: true}
	d := newDispatcher(t, cfg)

	resp := d.Dispatch(context.Background(), "bitbucket_get_pull_request", map[string]string{
		"workspace": "acme",
		"repoSlug":  "api",
		"prId":      "twelve",
	})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "'prId'")
	assert.Contains(t, resp.Error, "numeric")
}

func TestDispatch_InactiveProduct(t *testing.T) {
	d := newDispatcher(t, testConfig())
	resp := d.Dispatch(context.Background(), "jira_get_issue", map[string]string{"issueKey": "ABC-1"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "not configured")
}

func TestDispatch_JiraGetIssue_RetriesThenFormats(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"key":"ABC-1","fields":{"summary":"Fix login flow","status":{"name":"Open"}}}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Jira = config.ProductConfig{URL: srv.URL, Enabled: true}
	d := newDispatcher(t, cfg)

	resp := d.Dispatch(context.Background(), "jira_get_issue", map[string]string{"issueKey": "ABC-1"})
	require.True(t, resp.Success, "error: %s", resp.Error)
	assert.True(t, strings.HasPrefix(resp.Content, "## ABC-1 — "), "content: %s", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
	assert.Empty(t, resp.Error)
}

func TestDispatch_ClientErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errorMessages":["Issue does not exist"]}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Jira = config.ProductConfig{URL: srv.URL, Enabled: true}
	d := newDispatcher(t, cfg)

	resp := d.Dispatch(context.Background(), "jira_get_issue", map[string]string{"issueKey": "NOPE-1"})
	assert.False(t, resp.Success)
	assert.Equal(t, "jira: NotFoundError: Issue does not exist", resp.Error)
}

func TestDispatch_DiscoverResources(t *testing.T) {
	d := newDispatcher(t, testConfig())

	resp := d.Dispatch(context.Background(), "discover_resources", map[string]string{
		"query": `"JUnit 5 docs"`,
	})
	require.True(t, resp.Success, "error: %s", resp.Error)
	assert.Contains(t, resp.Content, "JUnit 5 User Guide")
	assert.Contains(t, resp.Content, "Mode: SPECIFIC")
}

func TestDispatch_ExportWithoutPriorDiscovery(t *testing.T) {
	d := newDispatcher(t, testConfig())
	resp := d.Dispatch(context.Background(), "export_results", map[string]string{"format": "markdown"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "discover_resources")
}

func TestDispatch_ExportAfterDiscovery(t *testing.T) {
	d := newDispatcher(t, testConfig())

	discover := d.Dispatch(context.Background(), "discover_resources", map[string]string{"query": "java concurrency"})
	require.True(t, discover.Success)

	resp := d.Dispatch(context.Background(), "export_results", map[string]string{"format": "text"})
	require.True(t, resp.Success)
	assert.Contains(t, resp.Content, "LEARNING RESOURCE DISCOVERY")
}

func TestDispatch_ExportPDF_NeverErrors(t *testing.T) {
	d := newDispatcher(t, testConfig())

	resp := d.Dispatch(context.Background(), "export_results", map[string]string{
		"format": "pdf",
		"query":  "java concurrency",
	})
	require.True(t, resp.Success, "converter failures fall back, they never error: %s", resp.Error)
	if strings.Contains(resp.Content, "Pandoc is not installed") {
		assert.Contains(t, resp.Content, "LEARNING RESOURCE DISCOVERY")
	} else {
		assert.Contains(t, resp.Content, "Exported")
	}
}

func TestDispatch_VaultTools(t *testing.T) {
	d := newDispatcher(t, testConfig())

	browse := d.Dispatch(context.Background(), "vault_browse", map[string]string{"category": "java"})
	require.True(t, browse.Success)
	assert.Contains(t, browse.Content, "junit5-user-guide")

	get := d.Dispatch(context.Background(), "vault_get", map[string]string{"id": "jcip"})
	require.True(t, get.Success)
	assert.Contains(t, get.Content, "Java Concurrency in Practice")

	missing := d.Dispatch(context.Background(), "vault_get", map[string]string{"id": "ghost"})
	assert.False(t, missing.Success)
	assert.Contains(t, missing.Error, "ArgumentError")
}

func TestDispatch_UnifiedSearch_PartialFailure(t *testing.T) {
	jiraSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"issues":[{"key":"ABC-9","fields":{"summary":"Cache misses","status":{"name":"Open"}}}]}`))
	}))
	defer jiraSrv.Close()

	confluenceSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"CQL syntax error"}`))
	}))
	defer confluenceSrv.Close()

	cfg := testConfig()
	cfg.Jira = config.ProductConfig{URL: jiraSrv.URL, Enabled: true}
	cfg.Confluence = config.ProductConfig{URL: confluenceSrv.URL, Enabled: true}
	d := newDispatcher(t, cfg)

	resp := d.Dispatch(context.Background(), "atlassian_unified_search", map[string]string{"query": "cache"})
	require.True(t, resp.Success, "partial failure must not abort the aggregate: %s", resp.Error)
	assert.Contains(t, resp.Content, "ABC-9")
	assert.Contains(t, resp.Content, "ClientError")
	assert.Contains(t, resp.Content, "CQL syntax error")
}

func TestDispatch_UnifiedSearch_NoLiveProducts(t *testing.T) {
	d := newDispatcher(t, testConfig())
	resp := d.Dispatch(context.Background(), "atlassian_unified_search", map[string]string{"query": "cache"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "no live product")
}

func TestListTools(t *testing.T) {
	d := newDispatcher(t, testConfig())
	tools := d.ListTools()
	require.NotEmpty(t, tools)

	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"jira_search", "jira_get_issue", "jira_create_issue", "jira_transition_issue",
		"confluence_search", "confluence_get_page", "confluence_update_page",
		"bitbucket_list_repos", "bitbucket_get_pull_request", "bitbucket_code_search",
		"atlassian_unified_search", "discover_resources", "scrape_url",
		"add_resource_from_url", "export_results", "vault_browse", "vault_get",
	} {
		assert.True(t, names[want], "missing tool %s", want)
	}
}

func TestDispatch_AddResourceFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head><title>Intro to Channels</title></head><body><p>Channels connect goroutines. They carry values.</p></body></html>`))
	}))
	defer srv.Close()

	d := newDispatcher(t, testConfig())
	before := d.Store().Len()

	resp := d.Dispatch(context.Background(), "add_resource_from_url", map[string]string{"url": srv.URL})
	require.True(t, resp.Success, "error: %s", resp.Error)
	assert.Contains(t, resp.Content, "Intro to Channels")
	assert.Equal(t, before+1, d.Store().Len())
}
