package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/saharshpoddar/learning-gateway/internal/export"
	"github.com/saharshpoddar/learning-gateway/internal/format"
	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

func (d *Dispatcher) registerLearningTools() {
	d.register(toolSpec{
		Name:        "discover_resources",
		Product:     ProductLearning,
		Description: "Rank learning resources against a free-form query",
		Required:    []string{"query"},
		Numeric:     []string{"limit"},
		Handler: func(_ context.Context, args map[string]string) (string, error) {
			result := d.engine.Discover(args["query"], intArg(args, "limit"))
			d.rememberResult(result)
			return export.RenderMarkdown(result), nil
		},
	})

	d.register(toolSpec{
		Name:        "vault_browse",
		Product:     ProductLearning,
		Description: "Browse the resource vault with filters",
		Handler: func(_ context.Context, args map[string]string) (string, error) {
			filter, err := browseFilter(args)
			if err != nil {
				return "", err
			}
			return format.VaultResourceList(d.store.Browse(filter)), nil
		},
	})

	d.register(toolSpec{
		Name:        "vault_get",
		Product:     ProductLearning,
		Description: "Fetch one vault resource by id",
		Required:    []string{"id"},
		Handler: func(_ context.Context, args map[string]string) (string, error) {
			record, ok := d.store.Get(strings.TrimSpace(args["id"]))
			if !ok {
				return "", fmt.Errorf("no resource with id %q", args["id"])
			}
			return format.VaultResourceDetail(record), nil
		},
	})

	d.register(toolSpec{
		Name:        "scrape_url",
		Product:     ProductLearning,
		Description: "Fetch a URL and summarize its content",
		Required:    []string{"url"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			summary, err := d.scraper.Scrape(ctx, args["url"])
			if err != nil {
				return "", err
			}
			return format.ContentSummaryDetail(summary), nil
		},
	})

	d.register(toolSpec{
		Name:        "add_resource_from_url",
		Product:     ProductLearning,
		Description: "Scrape a URL and stage it as a session-local vault resource",
		Required:    []string{"url"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			summary, err := d.scraper.Scrape(ctx, args["url"])
			if err != nil {
				return "", err
			}
			title := summary.Title
			if title == "" {
				title = args["url"]
			}
			record := vault.ResourceRecord{
				ID:          uuid.NewString(),
				Title:       title,
				Description: summary.Summary,
				URL:         args["url"],
				Type:        vault.TypeArticle,
				Difficulty:  summary.Difficulty,
				Freshness:   vault.PeriodicallyUpdated,
				Free:        true,
			}
			if err := d.store.Add(record); err != nil {
				return "", err
			}
			return fmt.Sprintf("Staged %q as resource %s (difficulty %s). "+
				"It is part of this session's vault but not persisted.",
				title, record.ID, record.Difficulty), nil
		},
	})

	d.register(toolSpec{
		Name:        "export_results",
		Product:     ProductLearning,
		Description: "Export the latest discovery result (markdown, text, pdf, docx)",
		Required:    []string{"format"},
		Numeric:     []string{"limit"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			exportFormat, err := export.ParseFormat(args["format"])
			if err != nil {
				return "", err
			}
			result, ok := d.recallResult()
			if query := strings.TrimSpace(args["query"]); query != "" {
				result = d.engine.Discover(query, intArg(args, "limit"))
				d.rememberResult(result)
				ok = true
			}
			if !ok {
				return "", fmt.Errorf("no discovery result to export; run discover_resources first or pass a query")
			}
			return d.exporter.Export(ctx, result, exportFormat), nil
		},
	})
}

// browseFilter materializes a vault filter from string arguments.
func browseFilter(args map[string]string) (vault.Filter, error) {
	var filter vault.Filter
	if v := strings.TrimSpace(args["category"]); v != "" {
		category, err := vault.ParseCategory(v)
		if err != nil {
			return vault.Filter{}, err
		}
		filter.Category = category
	}
	if v := strings.TrimSpace(args["concept"]); v != "" {
		concept, err := vault.ParseConceptArea(v)
		if err != nil {
			return vault.Filter{}, err
		}
		filter.Concept = concept
	}
	if v := strings.TrimSpace(args["type"]); v != "" {
		filter.Type = vault.ParseResourceType(v)
	}
	if v := strings.TrimSpace(args["freshness"]); v != "" {
		filter.Freshness = vault.ParseFreshness(v)
	}
	if v := strings.TrimSpace(args["minDifficulty"]); v != "" {
		difficulty, err := vault.ParseDifficulty(v)
		if err != nil {
			return vault.Filter{}, err
		}
		filter.MinDifficulty = difficulty
	}
	if v := strings.TrimSpace(args["maxDifficulty"]); v != "" {
		difficulty, err := vault.ParseDifficulty(v)
		if err != nil {
			return vault.Filter{}, err
		}
		filter.MaxDifficulty = difficulty
	}
	filter.Pattern = strings.TrimSpace(args["pattern"])
	filter.FreeOnly = strings.EqualFold(strings.TrimSpace(args["freeOnly"]), "true")
	return filter, nil
}
