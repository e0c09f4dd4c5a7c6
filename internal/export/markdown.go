// Package export serializes discovery results to Markdown and plain text,
// with optional conversion to PDF or DOCX through an external pandoc
// binary.
package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/discovery"
)

// RenderMarkdown serializes a discovery result: title, metadata blockquote,
// ranked table, per-resource detail sections, and suggestions.
func RenderMarkdown(result discovery.Result) string {
	var sb strings.Builder

	sb.WriteString("# Learning Resource Discovery\n\n")
	sb.WriteString(fmt.Sprintf("> Query: %s\n", result.Query))
	sb.WriteString(fmt.Sprintf("> Mode: %s\n", result.Mode))
	sb.WriteString(fmt.Sprintf("> %s\n\n", result.Summary))

	if len(result.Resources) > 0 {
		sb.WriteString("| # | Resource | Type | Difficulty | Score | Official |\n")
		sb.WriteString("|---|----------|------|------------|-------|----------|\n")
		for i, sr := range result.Resources {
			r := sr.Resource
			official := "no"
			if r.Official {
				official = "yes"
			}
			sb.WriteString(fmt.Sprintf("| %d | [%s](%s) | %s | %s | %d | %s |\n",
				i+1, r.Title, r.URL, r.Type, r.Difficulty, sr.Score, official))
		}
		sb.WriteString("\n")

		for i, sr := range result.Resources {
			r := sr.Resource
			sb.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, r.Title))
			sb.WriteString(fmt.Sprintf("- ID: %s\n", r.ID))
			sb.WriteString(fmt.Sprintf("- URL: %s\n", r.URL))
			if r.Author != "" {
				sb.WriteString(fmt.Sprintf("- Author: %s\n", r.Author))
			}
			sb.WriteString(fmt.Sprintf("- Freshness: %s\n", r.Freshness))
			if len(r.Tags) > 0 {
				sb.WriteString(fmt.Sprintf("- Tags: %s\n", strings.Join(r.Tags, ", ")))
			}
			if r.Description != "" {
				sb.WriteString(fmt.Sprintf("\n%s\n", r.Description))
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("## Suggestions\n\n")
		for _, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RankedRow is one (rank, id, score) triple recovered from rendered
// Markdown.
type RankedRow struct {
	Rank  int
	ID    string
	Score int
}

var (
	tableRowRe = regexp.MustCompile(`^\| (\d+) \| \[.*?\]\(.*?\) \| .*? \| .*? \| (\d+) \| (?:yes|no) \|$`)
	detailIDRe = regexp.MustCompile(`^- ID: (.+)$`)
)

// ParseRankedList recovers the (rank, id, score) triples from Markdown
// produced by RenderMarkdown, in table order.
func ParseRankedList(markdown string) ([]RankedRow, error) {
	var rows []RankedRow
	var ids []string
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if m := tableRowRe.FindStringSubmatch(line); m != nil {
			rank, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("bad rank in %q: %w", line, err)
			}
			score, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("bad score in %q: %w", line, err)
			}
			rows = append(rows, RankedRow{Rank: rank, Score: score})
			continue
		}
		if m := detailIDRe.FindStringSubmatch(line); m != nil {
			ids = append(ids, strings.TrimSpace(m[1]))
		}
	}
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("found %d table rows but %d detail ids", len(rows), len(ids))
	}
	for i := range rows {
		rows[i].ID = ids[i]
	}
	return rows, nil
}
