package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/saharshpoddar/learning-gateway/internal/format"
)

// registerUnifiedSearch wires the cross-product aggregator. It fans out to
// every live product in parallel (Bitbucket only when a default workspace
// is configured); one product failing does not abort the
// others, and the partial failures are reported inline in the single
// aggregated response. Hits are not de-duplicated across products.
func (d *Dispatcher) registerUnifiedSearch() {
	d.register(toolSpec{
		Name:        "atlassian_unified_search",
		Product:     ProductSystem,
		Description: "Search Jira, Confluence, and Bitbucket in one call",
		Required:    []string{"query"},
		Numeric:     []string{"maxResults"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			return d.unifiedSearch(ctx, args["query"], intArg(args, "maxResults"))
		},
	})
}

type searchSection struct {
	title   string
	content string
	err     error
}

func (d *Dispatcher) unifiedSearch(ctx context.Context, query string, maxResults int) (string, error) {
	type task struct {
		title string
		run   func(context.Context) (string, error)
	}

	var tasks []task
	if d.cfg.Jira.Live() {
		tasks = append(tasks, task{"Jira", func(ctx context.Context) (string, error) {
			issues, err := d.jira.SearchIssues(ctx, query, maxResults)
			if err != nil {
				return "", err
			}
			return format.JiraIssueList(issues), nil
		}})
	}
	if d.cfg.Confluence.Live() {
		tasks = append(tasks, task{"Confluence", func(ctx context.Context) (string, error) {
			pages, err := d.confluence.Search(ctx, query, maxResults)
			if err != nil {
				return "", err
			}
			return format.ConfluencePageList(pages), nil
		}})
	}
	if d.cfg.Bitbucket.Live() && d.cfg.BitbucketWorkspace != "" {
		tasks = append(tasks, task{"Bitbucket", func(ctx context.Context) (string, error) {
			results, err := d.bitbucket.CodeSearch(ctx, d.cfg.BitbucketWorkspace, query, maxResults)
			if err != nil {
				return "", err
			}
			return format.BitbucketCodeSearchList(query, results), nil
		}})
	}
	if len(tasks) == 0 {
		return "", fmt.Errorf("no live product to search; enable jira, confluence, or bitbucket")
	}

	sections := make([]searchSection, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task) {
			defer wg.Done()
			content, err := t.run(ctx)
			sections[i] = searchSection{title: t.title, content: content, err: err}
		}(i, t)
	}
	wg.Wait()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Unified search: %s\n\n", query))
	failures := 0
	for _, section := range sections {
		sb.WriteString("## " + section.title + "\n\n")
		if section.err != nil {
			failures++
			sb.WriteString(formatError(productForTitle(section.title), section.err) + "\n\n")
			continue
		}
		sb.WriteString(section.content + "\n")
	}
	if failures == len(sections) {
		return "", fmt.Errorf("all products failed; see individual errors:\n%s", sb.String())
	}
	return sb.String(), nil
}

func productForTitle(title string) Product {
	switch title {
	case "Jira":
		return ProductJira
	case "Confluence":
		return ProductConfluence
	case "Bitbucket":
		return ProductBitbucket
	}
	return ProductSystem
}
