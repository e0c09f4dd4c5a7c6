package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharshpoddar/learning-gateway/internal/discovery"
	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

func sampleResult() discovery.Result {
	return discovery.Result{
		Query:   "java concurrency",
		Mode:    discovery.ModeVague,
		Summary: "2 matches for mode VAGUE; resolved concepts: CONCURRENCY; categories: JAVA",
		Resources: []discovery.ScoredResource{
			{
				Resource: vault.ResourceRecord{
					ID:          "jcip",
					Title:       "Java Concurrency in Practice",
					URL:         "https://jcip.net/",
					Type:        vault.TypeBook,
					Difficulty:  vault.Advanced,
					Freshness:   vault.Evergreen,
					Author:      "Brian Goetz",
					Official:    false,
					Tags:        []string{"threads", "concurrency"},
					Description: "The definitive book on Java concurrency.",
				},
				Score: 82,
			},
			{
				Resource: vault.ResourceRecord{
					ID:         "go-tour",
					Title:      "A Tour of Go",
					URL:        "https://go.dev/tour/",
					Type:       vault.TypeTutorial,
					Difficulty: vault.Beginner,
					Freshness:  vault.ActivelyMaintained,
					Official:   true,
				},
				Score: 41,
			},
		},
		Suggestions: []string{"Explore the broader topic DISTRIBUTED_SYSTEMS"},
	}
}

func TestRenderMarkdown_Structure(t *testing.T) {
	md := RenderMarkdown(sampleResult())

	assert.True(t, strings.HasPrefix(md, "# Learning Resource Discovery"))
	assert.Contains(t, md, "> Query: java concurrency")
	assert.Contains(t, md, "| # | Resource | Type | Difficulty | Score | Official |")
	assert.Contains(t, md, "| 1 | [Java Concurrency in Practice](https://jcip.net/) | BOOK | ADVANCED | 82 | no |")
	assert.Contains(t, md, "| 2 | [A Tour of Go](https://go.dev/tour/) | TUTORIAL | BEGINNER | 41 | yes |")
	assert.Contains(t, md, "### 1. Java Concurrency in Practice")
	assert.Contains(t, md, "- ID: jcip")
	assert.Contains(t, md, "## Suggestions")
}

func TestMarkdownRoundTrip(t *testing.T) {
	result := sampleResult()
	md := RenderMarkdown(result)

	rows, err := ParseRankedList(md)
	require.NoError(t, err)
	require.Len(t, rows, len(result.Resources))
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, result.Resources[i].Resource.ID, row.ID)
		assert.Equal(t, result.Resources[i].Score, row.Score)
	}
}

func TestRenderText_Structure(t *testing.T) {
	text := RenderText(sampleResult())
	assert.Contains(t, text, "LEARNING RESOURCE DISCOVERY")
	assert.Contains(t, text, "Query:")
	assert.Contains(t, text, "[1] Java Concurrency in Practice (score 82)")
	assert.Contains(t, text, "SUGGESTIONS")
}

func TestExport_PDFWithoutPandoc(t *testing.T) {
	e := &Exporter{
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		run:      func(context.Context, string, ...string) error { t.Fatal("must not run"); return nil },
		tempDir:  os.MkdirTemp,
	}

	out := e.Export(context.Background(), sampleResult(), FormatPDF)
	assert.Contains(t, out, "Pandoc is not installed")
	assert.Contains(t, out, "LEARNING RESOURCE DISCOVERY", "plain text section included")
}

func TestExport_PDFWithPandoc(t *testing.T) {
	var gotArgs []string
	e := &Exporter{
		lookPath: func(string) (string, error) { return "/usr/bin/pandoc", nil },
		run: func(_ context.Context, name string, args ...string) error {
			gotArgs = append([]string{name}, args...)
			// simulate pandoc writing its output file: args are
			// [in, -o, out, --from=markdown, --standalone]
			return os.WriteFile(args[2], []byte("%PDF-1.4 fake"), 0o644)
		},
		tempDir: os.MkdirTemp,
	}

	out := e.Export(context.Background(), sampleResult(), FormatPDF)
	assert.Contains(t, out, "Exported 2 resources to")
	assert.Contains(t, out, "result.pdf")
	require.NotEmpty(t, gotArgs)
	assert.Equal(t, "/usr/bin/pandoc", gotArgs[0])
	assert.Contains(t, gotArgs, "--from=markdown")
	assert.Contains(t, gotArgs, "--standalone")
	assert.Equal(t, "result.md", filepath.Base(gotArgs[1]))
}

func TestExport_PandocFailureFallsBack(t *testing.T) {
	e := &Exporter{
		lookPath: func(string) (string, error) { return "/usr/bin/pandoc", nil },
		run: func(context.Context, string, ...string) error {
			return errors.New("exit status 47")
		},
		tempDir: os.MkdirTemp,
	}

	out := e.Export(context.Background(), sampleResult(), FormatDOCX)
	assert.Contains(t, out, "conversion to DOCX failed")
	assert.Contains(t, out, "LEARNING RESOURCE DISCOVERY")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("stone-tablet")
	require.Error(t, err)
}
