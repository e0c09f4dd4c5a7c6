package format

import (
	"fmt"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/scrape"
	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

// VaultResourceDetail renders one vault record as a detail block.
func VaultResourceDetail(r vault.ResourceRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s — %s\n\n", r.ID, r.Title))
	sb.WriteString(fmt.Sprintf("Type: %s\n", orDash(string(r.Type))))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", r.Difficulty))
	sb.WriteString(fmt.Sprintf("Freshness: %s\n", orDash(string(r.Freshness))))
	sb.WriteString(fmt.Sprintf("Author: %s\n", orDash(r.Author)))
	sb.WriteString(fmt.Sprintf("URL: %s\n", orDash(r.URL)))
	official := "no"
	if r.Official {
		official = "yes"
	}
	free := "no"
	if r.Free {
		free = "yes"
	}
	sb.WriteString(fmt.Sprintf("Official: %s, Free: %s\n", official, free))
	if len(r.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(r.Tags, ", ")))
	}
	if r.Description != "" {
		sb.WriteString("\n" + r.Description + "\n")
	}
	return sb.String()
}

// VaultResourceList renders vault records as a summary table.
func VaultResourceList(records []vault.ResourceRecord) string {
	if len(records) == 0 {
		return "No resources matched.\n"
	}
	var sb strings.Builder
	sb.WriteString("| ID | Title | Type | Difficulty | Freshness |\n")
	sb.WriteString("|----|-------|------|------------|-----------|\n")
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			r.ID, cell(r.Title), cell(string(r.Type)), r.Difficulty, cell(string(r.Freshness))))
	}
	sb.WriteString(fmt.Sprintf("\n%d resource(s)\n", len(records)))
	return sb.String()
}

// ContentSummaryDetail renders a scraped page envelope.
func ContentSummaryDetail(cs scrape.ContentSummary) string {
	var sb strings.Builder
	title := cs.Title
	if title == "" {
		title = cs.URL
	}
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString(fmt.Sprintf("URL: %s\n", cs.URL))
	sb.WriteString(fmt.Sprintf("Words: %d\n", cs.WordCount))
	sb.WriteString(fmt.Sprintf("Reading time: %d min\n", cs.ReadingMinutes))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", cs.Difficulty))
	sb.WriteString(fmt.Sprintf("Code blocks: %d\n", cs.CodeBlocks))
	if cs.Summary != "" {
		sb.WriteString("\n" + cs.Summary + "\n")
	}
	return sb.String()
}
