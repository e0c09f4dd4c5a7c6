package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func envMap(pairs map[string]string) func(string) string {
	return func(key string) string {
		return pairs[key]
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
# base layer
instance.name = base-name
jira.url = https://base.atlassian.net/
jira.enabled = true
atlassian.email = base@example.com
atlassian.apiToken = base-secret
preferences.maxRetries = 5
`)
	writeConfigFile(t, dir, "mcp-config.local.properties", `
instance.name=local-name
preferences.maxRetries=4
`)

	cfg, err := Load(Options{Dir: dir, Lookup: envMap(map[string]string{
		"MCP_INSTANCE_NAME": "env-name",
	})})
	require.NoError(t, err)

	// env > local > base
	assert.Equal(t, "env-name", cfg.InstanceName)
	assert.Equal(t, 4, cfg.Preferences.MaxRetries)
	assert.Equal(t, "https://base.atlassian.net", cfg.Jira.URL)
	assert.True(t, cfg.Jira.Live())
}

func TestLoad_BlankEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
instance.name = from-file
jira.url = https://file.atlassian.net
jira.enabled = true
atlassian.email = ops@example.com
atlassian.apiToken = secret
`)

	cfg, err := Load(Options{Dir: dir, Lookup: envMap(map[string]string{
		"MCP_INSTANCE_NAME": "   ",
	})})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.InstanceName)
}

func TestLoad_AtlassianEnvMapping(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Options{Dir: dir, Lookup: envMap(map[string]string{
		"ATLASSIAN_JIRA_URL":     "https://env.atlassian.net/",
		"ATLASSIAN_JIRA_ENABLED": "1",
		"ATLASSIAN_EMAIL":        "env@example.com",
		"ATLASSIAN_API_TOKEN":    "env-token",
	})})
	require.NoError(t, err)

	assert.Equal(t, "https://env.atlassian.net", cfg.Jira.URL)
	assert.True(t, cfg.Jira.Live())
	assert.Equal(t, "env@example.com", cfg.Credentials.Email)
	assert.Equal(t, "env-token", cfg.Credentials.Secret)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	require.NoError(t, err)

	assert.Equal(t, defaultInstanceName, cfg.InstanceName)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3, cfg.Preferences.MaxRetries)
	assert.Equal(t, 60, cfg.Preferences.TimeoutSeconds)
	assert.Equal(t, DeploymentCustom, cfg.Deployment)
}

func TestLoad_BadNumericFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
preferences.maxRetries = lots
http.connectTimeoutMs = -200
`)

	cfg, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Preferences.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestLoad_AuthTypeInference(t *testing.T) {
	tests := []struct {
		name       string
		deployment string
		authType   string
		expected   AuthType
	}{
		{"cloud defaults to api token", "cloud", "", AuthAPIToken},
		{"data center defaults to pat", "data_center", "", AuthPersonalAccessToken},
		{"server defaults to pat", "SERVER", "", AuthPersonalAccessToken},
		{"explicit wins over variant", "server", "api_token", AuthAPIToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, "mcp-config.properties", `
atlassian.deployment = `+tt.deployment+`
atlassian.authType = `+tt.authType+`
`)
			cfg, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Credentials.AuthType)
		})
	}
}

func TestLoad_NoLiveProductFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(Options{Dir: dir, Lookup: envMap(nil)})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Problems)
}

func TestLoad_MissingCredentialsFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
jira.url = https://x.atlassian.net
jira.enabled = true
`)
	_, err := Load(Options{Dir: dir, Lookup: envMap(nil)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "credentials")
}

func TestLoad_UnknownActiveProfileFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
profiles.active = nightshift
`)
	_, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "nightshift")
}

func TestLoad_ProfileOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
preferences.theme = light
preferences.maxRetries = 3
profiles.active = focus
profiles.focus.preferences.theme = dark
profiles.focus.preferences.timeoutSeconds = 15
profiles.focus.location = home
servers.notes.type = stdio
servers.notes.command = notes-mcp
servers.notes.enabled = true
profiles.focus.servers.notes.command = notes-mcp-v2
`)
	cfg, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Preferences.Theme)
	assert.Equal(t, 3, cfg.Preferences.MaxRetries) // untouched by overlay
	assert.Equal(t, 15, cfg.Preferences.TimeoutSeconds)
	assert.Equal(t, "home", cfg.Location)
	assert.Equal(t, "notes-mcp-v2", cfg.Servers["notes"].Command)
}

func TestLoad_ProfileCannotAddServer(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
profiles.active = focus
profiles.focus.servers.ghost.command = ghost-mcp
`)
	_, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "undeclared server")
}

func TestLoad_ServerValidation(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
servers.broken.type = stdio
servers.broken.enabled = true
servers.webby.type = http
servers.webby.enabled = true
`)
	_, err := Load(Options{Dir: dir, ListToolsOnly: true, Lookup: envMap(nil)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://x.net", NormalizeBaseURL("https://x.net/"))
	assert.Equal(t, "https://x.net", NormalizeBaseURL("https://x.net"))
	// idempotent, strips at most one slash
	assert.Equal(t, "https://x.net/", NormalizeBaseURL("https://x.net//"))
	assert.Equal(t, NormalizeBaseURL(NormalizeBaseURL("https://x.net/")), NormalizeBaseURL("https://x.net/"))
}

func TestParseProperties(t *testing.T) {
	props := parseProperties(`
# comment
key.one = value one
 = skipped
bare-line
key.two=v2
`)
	assert.Equal(t, map[string]string{"key.one": "value one", "key.two": "v2"}, props)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(`MCP_INSTANCE_NAME="dotenv-name"`), 0o644))

	// godotenv.Load sets os env vars directly, bypassing t.Setenv cleanup
	os.Unsetenv("MCP_INSTANCE_NAME")
	t.Cleanup(func() { os.Unsetenv("MCP_INSTANCE_NAME") })

	cfg, err := Load(Options{Dir: dir, ListToolsOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "dotenv-name", cfg.InstanceName)
}

func TestLoad_PerProductFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "mcp-config.properties", `
atlassian.email = ops@example.com
atlassian.apiToken = secret
`)
	writeConfigFile(t, filepath.Join(dir, "servers", "jira"), "jira-config.properties", `
jira.url = https://jira.example.com/
jira.enabled = true
`)
	writeConfigFile(t, filepath.Join(dir, "servers", "jira"), "jira-config.local.properties", `
jira.url=https://jira.local.example.com
`)

	cfg, err := Load(Options{Dir: dir, Lookup: envMap(nil)})
	require.NoError(t, err)
	assert.Equal(t, "https://jira.local.example.com", cfg.Jira.URL)
	assert.Equal(t, []string{"jira"}, cfg.LiveProducts())
}
