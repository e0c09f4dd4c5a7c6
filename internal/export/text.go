package export

import (
	"fmt"
	"strings"

	"github.com/saharshpoddar/learning-gateway/internal/discovery"
)

const separator = "================================================================"

// RenderText serializes a discovery result as plain text with separator
// bars and two-column key-value lines.
func RenderText(result discovery.Result) string {
	var sb strings.Builder

	sb.WriteString(separator + "\n")
	sb.WriteString("LEARNING RESOURCE DISCOVERY\n")
	sb.WriteString(separator + "\n")
	writeKV(&sb, "Query", result.Query)
	writeKV(&sb, "Mode", string(result.Mode))
	writeKV(&sb, "Summary", result.Summary)
	sb.WriteString(separator + "\n")

	for i, sr := range result.Resources {
		r := sr.Resource
		sb.WriteString(fmt.Sprintf("\n[%d] %s (score %d)\n", i+1, r.Title, sr.Score))
		writeKV(&sb, "ID", r.ID)
		writeKV(&sb, "URL", r.URL)
		writeKV(&sb, "Type", string(r.Type))
		writeKV(&sb, "Difficulty", r.Difficulty.String())
		writeKV(&sb, "Freshness", string(r.Freshness))
		official := "no"
		if r.Official {
			official = "yes"
		}
		writeKV(&sb, "Official", official)
		if r.Description != "" {
			writeKV(&sb, "About", r.Description)
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\n" + separator + "\n")
		sb.WriteString("SUGGESTIONS\n")
		for _, s := range result.Suggestions {
			sb.WriteString("  * " + s + "\n")
		}
	}
	sb.WriteString(separator + "\n")
	return sb.String()
}

func writeKV(sb *strings.Builder, key, value string) {
	sb.WriteString(fmt.Sprintf("%-12s %s\n", key+":", value))
}
