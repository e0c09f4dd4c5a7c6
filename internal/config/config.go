// Package config loads the layered gateway configuration: committed
// properties files, developer-local overrides, then environment variables.
// The result is an immutable runtime profile shared by every subsystem.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DeploymentVariant is the flavor of the remote Atlassian deployment.
type DeploymentVariant string

const (
	DeploymentCloud      DeploymentVariant = "CLOUD"
	DeploymentDataCenter DeploymentVariant = "DATA_CENTER"
	DeploymentServer     DeploymentVariant = "SERVER"
	DeploymentCustom     DeploymentVariant = "CUSTOM"
)

// ParseDeploymentVariant matches case-insensitively and falls back to
// CUSTOM for unknown values.
func ParseDeploymentVariant(s string) DeploymentVariant {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CLOUD":
		return DeploymentCloud
	case "DATA_CENTER", "DATACENTER":
		return DeploymentDataCenter
	case "SERVER":
		return DeploymentServer
	}
	return DeploymentCustom
}

// SelfManaged reports whether the deployment is operated by the customer.
func (v DeploymentVariant) SelfManaged() bool {
	return v == DeploymentDataCenter || v == DeploymentServer
}

// AuthType selects how credentials are presented to the remote products.
type AuthType string

const (
	AuthAPIToken            AuthType = "API_TOKEN"
	AuthPersonalAccessToken AuthType = "PERSONAL_ACCESS_TOKEN"
)

// ParseAuthType matches case-insensitively. An empty input returns an empty
// AuthType so the caller can infer from the deployment variant.
func ParseAuthType(s string) (AuthType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "API_TOKEN":
		return AuthAPIToken, nil
	case "PERSONAL_ACCESS_TOKEN", "PAT":
		return AuthPersonalAccessToken, nil
	}
	return "", fmt.Errorf("unknown auth type %q", s)
}

// Credentials holds the shared Atlassian account credentials.
type Credentials struct {
	Email    string
	Secret   string
	AuthType AuthType
}

// Empty reports whether no credential material is configured.
func (c Credentials) Empty() bool {
	return c.Email == "" && c.Secret == ""
}

// ProductConfig is the per-product connection block.
type ProductConfig struct {
	URL     string
	Enabled bool
}

// Live reports whether the product should be served: enabled with a
// non-blank base URL.
func (p ProductConfig) Live() bool {
	return p.Enabled && p.URL != ""
}

// Preferences are operator tunables applied across subsystems.
type Preferences struct {
	Theme          string
	LogLevel       string
	MaxRetries     int
	TimeoutSeconds int
}

// ServerKind distinguishes generic MCP server entries declared in config.
type ServerKind string

const (
	ServerKindStdio ServerKind = "stdio"
	ServerKindHTTP  ServerKind = "http"
)

// ServerSpec is a generic downstream MCP server declaration.
type ServerSpec struct {
	Name    string
	Kind    ServerKind
	Command string
	URL     string
	Enabled bool
}

// Config is the validated runtime profile. It is built once at startup and
// never mutated afterwards.
type Config struct {
	InstanceName string
	Deployment   DeploymentVariant
	Credentials  Credentials

	Jira               ProductConfig
	Confluence         ProductConfig
	Bitbucket          ProductConfig
	BitbucketWorkspace string

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	Preferences   Preferences
	Location      string
	Browser       string
	Servers       map[string]ServerSpec
	ActiveProfile string
	ListToolsOnly bool
}

// LiveProducts returns the products that are enabled with a URL.
func (c *Config) LiveProducts() []string {
	var out []string
	if c.Jira.Live() {
		out = append(out, "jira")
	}
	if c.Confluence.Live() {
		out = append(out, "confluence")
	}
	if c.Bitbucket.Live() {
		out = append(out, "bitbucket")
	}
	return out
}

const (
	defaultConnectTimeoutMs = 10000
	defaultReadTimeoutMs    = 30000
	defaultMaxRetries       = 3
	defaultTimeoutSeconds   = 60
	defaultInstanceName     = "learning-gateway"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
)

type keySpec struct {
	name string
	kind keyKind
}

// knownKeys enumerates every canonical dotted key the resolver understands.
// Environment override names are derived from this table.
var knownKeys = []keySpec{
	{"instance.name", kindString},
	{"atlassian.deployment", kindString},
	{"atlassian.email", kindString},
	{"atlassian.apiToken", kindString},
	{"atlassian.authType", kindString},
	{"jira.url", kindString},
	{"jira.enabled", kindBool},
	{"confluence.url", kindString},
	{"confluence.enabled", kindBool},
	{"bitbucket.url", kindString},
	{"bitbucket.enabled", kindBool},
	{"bitbucket.workspace", kindString},
	{"http.connectTimeoutMs", kindInt},
	{"http.readTimeoutMs", kindInt},
	{"preferences.theme", kindString},
	{"preferences.logLevel", kindString},
	{"preferences.maxRetries", kindInt},
	{"preferences.timeoutSeconds", kindInt},
	{"profiles.active", kindString},
}

func warnBadNumeric(key, value string, def int) {
	log.Warn().Str("key", key).Str("value", value).Int("default", def).
		Msg("Numeric config value did not parse, using default")
}

// Options control where Load looks for configuration.
type Options struct {
	// Dir is the user-config directory root. Defaults to "user-config".
	Dir string
	// ListToolsOnly relaxes validation so the tool catalog can be printed
	// without any live product.
	ListToolsOnly bool
	// Lookup resolves environment variables; defaults to os.Getenv.
	Lookup func(string) string
}

// NormalizeBaseURL strips at most one trailing slash. Normalization is
// idempotent for URLs that end in at most one slash; "x//" becomes "x/".
func NormalizeBaseURL(u string) string {
	u = strings.TrimSpace(u)
	return strings.TrimSuffix(u, "/")
}

// Load merges the layered sources and builds the validated Config.
func Load(opts Options) (*Config, error) {
	if opts.Dir == "" {
		opts.Dir = "user-config"
	}
	if opts.Lookup == nil {
		opts.Lookup = os.Getenv
	}

	merged, err := loadLayers(opts.Dir)
	if err != nil {
		return nil, err
	}

	// Developer convenience: a .env next to the config files is exported
	// into the process environment before overrides are applied.
	if err := godotenv.Load(filepath.Join(opts.Dir, ".env")); err == nil {
		log.Debug().Str("dir", opts.Dir).Msg("Loaded .env overrides")
	}

	applyEnvOverrides(merged, opts.Lookup)

	cfg, problems := build(merged, opts.ListToolsOnly)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return cfg, nil
}

// loadLayers reads the base file, the local overrides file, and every
// per-product file pair in increasing precedence order.
func loadLayers(dir string) (map[string]string, error) {
	merged := make(map[string]string)

	base, err := readPropertiesFile(filepath.Join(dir, "mcp-config.properties"), false)
	if err != nil {
		return nil, err
	}
	mergeLayer(merged, base)

	local, err := readLocalOverrides(filepath.Join(dir, "mcp-config.local.properties"))
	if err != nil {
		return nil, err
	}
	mergeLayer(merged, local)

	for _, product := range []string{"jira", "confluence", "bitbucket"} {
		pdir := filepath.Join(dir, "servers", product)
		pbase, err := readPropertiesFile(filepath.Join(pdir, product+"-config.properties"), false)
		if err != nil {
			return nil, err
		}
		mergeLayer(merged, pbase)
		plocal, err := readLocalOverrides(filepath.Join(pdir, product+"-config.local.properties"))
		if err != nil {
			return nil, err
		}
		mergeLayer(merged, plocal)
	}
	return merged, nil
}

// readLocalOverrides parses a developer-local overrides file. The format is
// the same flat key=value text; a missing file is not an error.
func readLocalOverrides(path string) (map[string]string, error) {
	return readPropertiesFile(path, false)
}

func build(merged map[string]string, listToolsOnly bool) (*Config, []string) {
	var problems []string

	cfg := &Config{
		InstanceName: strings.TrimSpace(merged["instance.name"]),
		Deployment:   ParseDeploymentVariant(merged["atlassian.deployment"]),
		Jira: ProductConfig{
			URL:     NormalizeBaseURL(merged["jira.url"]),
			Enabled: parseBoolValue(merged["jira.enabled"]),
		},
		Confluence: ProductConfig{
			URL:     NormalizeBaseURL(merged["confluence.url"]),
			Enabled: parseBoolValue(merged["confluence.enabled"]),
		},
		Bitbucket: ProductConfig{
			URL:     NormalizeBaseURL(merged["bitbucket.url"]),
			Enabled: parseBoolValue(merged["bitbucket.enabled"]),
		},
		BitbucketWorkspace: strings.TrimSpace(merged["bitbucket.workspace"]),
		ConnectTimeout:     time.Duration(intValue("http.connectTimeoutMs", merged["http.connectTimeoutMs"], defaultConnectTimeoutMs)) * time.Millisecond,
		ReadTimeout:        time.Duration(intValue("http.readTimeoutMs", merged["http.readTimeoutMs"], defaultReadTimeoutMs)) * time.Millisecond,
		Preferences: Preferences{
			Theme:          strings.TrimSpace(merged["preferences.theme"]),
			LogLevel:       strings.TrimSpace(merged["preferences.logLevel"]),
			MaxRetries:     intValue("preferences.maxRetries", merged["preferences.maxRetries"], defaultMaxRetries),
			TimeoutSeconds: intValue("preferences.timeoutSeconds", merged["preferences.timeoutSeconds"], defaultTimeoutSeconds),
		},
		ActiveProfile: strings.TrimSpace(merged["profiles.active"]),
		ListToolsOnly: listToolsOnly,
	}

	if cfg.InstanceName == "" {
		cfg.InstanceName = defaultInstanceName
	}

	authType, err := ParseAuthType(merged["atlassian.authType"])
	if err != nil {
		problems = append(problems, err.Error())
	}
	if authType == "" {
		if cfg.Deployment.SelfManaged() {
			authType = AuthPersonalAccessToken
		} else {
			authType = AuthAPIToken
		}
	}
	cfg.Credentials = Credentials{
		Email:    strings.TrimSpace(merged["atlassian.email"]),
		Secret:   strings.TrimSpace(merged["atlassian.apiToken"]),
		AuthType: authType,
	}

	cfg.Servers = parseServers(merged, &problems)

	profiles := parseProfiles(merged)
	if cfg.ActiveProfile != "" {
		overlay, ok := profiles[cfg.ActiveProfile]
		if !ok {
			problems = append(problems, fmt.Sprintf("active profile %q is not defined", cfg.ActiveProfile))
		} else {
			applyProfile(cfg, overlay, &problems)
		}
	}

	for name, srv := range cfg.Servers {
		if !srv.Enabled {
			continue
		}
		switch srv.Kind {
		case ServerKindStdio:
			if srv.Command == "" {
				problems = append(problems, fmt.Sprintf("server %q is stdio but has no command", name))
			}
		case ServerKindHTTP:
			if srv.URL == "" {
				problems = append(problems, fmt.Sprintf("server %q is http but has no url", name))
			}
		}
	}

	if len(cfg.LiveProducts()) == 0 && !listToolsOnly {
		problems = append(problems, "no product is live; enable at least one product or run with --list-tools")
	}
	if len(cfg.LiveProducts()) > 0 && cfg.Credentials.Empty() {
		problems = append(problems, "credentials are required when a product is live")
	}

	return cfg, problems
}

// parseServers collects generic `servers.<name>.*` declarations.
func parseServers(merged map[string]string, problems *[]string) map[string]ServerSpec {
	servers := make(map[string]ServerSpec)
	for key, value := range merged {
		if !strings.HasPrefix(key, "servers.") {
			continue
		}
		rest := strings.TrimPrefix(key, "servers.")
		name, field, found := strings.Cut(rest, ".")
		if !found || name == "" {
			continue
		}
		srv := servers[name]
		srv.Name = name
		switch field {
		case "type":
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "stdio":
				srv.Kind = ServerKindStdio
			case "http":
				srv.Kind = ServerKindHTTP
			default:
				*problems = append(*problems, fmt.Sprintf("server %q has unknown type %q", name, value))
			}
		case "command":
			srv.Command = strings.TrimSpace(value)
		case "url":
			srv.URL = NormalizeBaseURL(value)
		case "enabled":
			srv.Enabled = parseBoolValue(value)
		}
		servers[name] = srv
	}
	return servers
}
