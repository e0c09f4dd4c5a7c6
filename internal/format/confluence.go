package format

import (
	"fmt"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/atlassian"
)

// ConfluencePageDetail renders one page as a detail block.
func ConfluencePageDetail(page atlassian.ConfluencePage) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s — %s\n\n", page.ID, page.Title))
	sb.WriteString(fmt.Sprintf("Space: %s\n", orDash(page.SpaceKey)))
	sb.WriteString(fmt.Sprintf("Version: %d\n", page.Version))
	sb.WriteString(fmt.Sprintf("Author: %s\n", orUnassigned(page.Author)))
	sb.WriteString(fmt.Sprintf("Updated: %s\n", orDash(page.Updated)))
	if page.Body != "" {
		sb.WriteString("\n" + page.Body + "\n")
	}
	return sb.String()
}

// ConfluencePageList renders pages as a summary table.
func ConfluencePageList(pages []atlassian.ConfluencePage) string {
	if len(pages) == 0 {
		return "No pages found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| ID | Title | Space | Version |\n")
	sb.WriteString("|----|-------|-------|---------|\n")
	for _, p := range pages {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d |\n",
			p.ID, cell(p.Title), cell(p.SpaceKey), p.Version))
	}
	sb.WriteString(fmt.Sprintf("\n%d page(s)\n", len(pages)))
	return sb.String()
}

// ConfluenceSpaceList renders spaces as a summary table.
func ConfluenceSpaceList(spaces []atlassian.ConfluenceSpace) string {
	if len(spaces) == 0 {
		return "No spaces found.\n"
	}
	var sb strings.Builder
	sb.WriteString("| Key | Name | Type |\n")
	sb.WriteString("|-----|------|------|\n")
	for _, s := range spaces {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", s.Key, cell(s.Name), cell(s.Type)))
	}
	return sb.String()
}
