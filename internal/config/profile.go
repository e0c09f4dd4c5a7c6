package config

import (
	"fmt"
	"strings"
)

// profileOverlay is a named bundle of additive overrides. Only the keys a
// profile specifies are applied; everything else keeps its base value.
type profileOverlay struct {
	name        string
	preferences map[string]string
	location    string
	browser     string
	servers     map[string]map[string]string
}

// parseProfiles collects `profiles.<name>.*` keys. The `profiles.active`
// selector itself is not a profile.
func parseProfiles(merged map[string]string) map[string]profileOverlay {
	profiles := make(map[string]profileOverlay)
	for key, value := range merged {
		if !strings.HasPrefix(key, "profiles.") {
			continue
		}
		rest := strings.TrimPrefix(key, "profiles.")
		if rest == "active" {
			continue
		}
		name, field, found := strings.Cut(rest, ".")
		if !found || name == "" {
			continue
		}
		p, ok := profiles[name]
		if !ok {
			p = profileOverlay{
				name:        name,
				preferences: make(map[string]string),
				servers:     make(map[string]map[string]string),
			}
		}
		switch {
		case strings.HasPrefix(field, "preferences."):
			p.preferences[strings.TrimPrefix(field, "preferences.")] = strings.TrimSpace(value)
		case field == "location":
			p.location = strings.TrimSpace(value)
		case field == "browser":
			p.browser = strings.TrimSpace(value)
		case strings.HasPrefix(field, "servers."):
			srvRest := strings.TrimPrefix(field, "servers.")
			srvName, srvField, ok := strings.Cut(srvRest, ".")
			if !ok || srvName == "" {
				break
			}
			if p.servers[srvName] == nil {
				p.servers[srvName] = make(map[string]string)
			}
			p.servers[srvName][srvField] = strings.TrimSpace(value)
		}
		profiles[name] = p
	}
	return profiles
}

// applyProfile overlays a profile onto the config. Server overrides may only
// modify servers already declared in the base layers; referencing an
// undeclared server is a validation problem rather than an implicit add.
func applyProfile(cfg *Config, p profileOverlay, problems *[]string) {
	for key, value := range p.preferences {
		switch key {
		case "theme":
			cfg.Preferences.Theme = value
		case "logLevel":
			cfg.Preferences.LogLevel = value
		case "maxRetries":
			cfg.Preferences.MaxRetries = intValue("profiles."+p.name+".preferences.maxRetries", value, cfg.Preferences.MaxRetries)
		case "timeoutSeconds":
			cfg.Preferences.TimeoutSeconds = intValue("profiles."+p.name+".preferences.timeoutSeconds", value, cfg.Preferences.TimeoutSeconds)
		}
	}
	if p.location != "" {
		cfg.Location = p.location
	}
	if p.browser != "" {
		cfg.Browser = p.browser
	}
	for srvName, fields := range p.servers {
		srv, ok := cfg.Servers[srvName]
		if !ok {
			*problems = append(*problems, fmt.Sprintf("profile %q overrides undeclared server %q", p.name, srvName))
			continue
		}
		for field, value := range fields {
			switch field {
			case "command":
				srv.Command = value
			case "url":
				srv.URL = NormalizeBaseURL(value)
			case "enabled":
				srv.Enabled = parseBoolValue(value)
			}
		}
		cfg.Servers[srvName] = srv
	}
}
