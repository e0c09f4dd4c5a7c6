// Package format converts typed product records into readable text blocks
// and tabular summaries. Output is Markdown-flavored UTF-8 built with
// strings.Builder; no rendering library is involved.
package format

import "strings"

const listCellWidth = 45

// Truncate shortens s to at most n runes, replacing the tail with an
// ellipsis; when n is 3 or less it cuts to n runes without one.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// cell prepares a value for a list table: single-line, truncated, dash for
// empty.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	return Truncate(s, listCellWidth)
}

// orDash substitutes a dash for blank metadata values.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// orUnassigned marks a blank person field.
func orUnassigned(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_Unassigned_"
	}
	return s
}
