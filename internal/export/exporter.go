package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saharshpoddar/learning-gateway/internal/discovery"
)

// Format selects the export serialization.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// ParseFormat matches case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "plain":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	case "docx", "word":
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("unknown export format %q (markdown, text, pdf, docx)", s)
}

// Exporter renders discovery results. Converter hooks are injectable so
// tests can run without a pandoc install.
type Exporter struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
	tempDir  func(dir, pattern string) (string, error)
}

// NewExporter builds an exporter backed by the real pandoc binary.
func NewExporter() *Exporter {
	return &Exporter{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Stdout = nil
			cmd.Stderr = nil
			return cmd.Run()
		},
		tempDir: os.MkdirTemp,
	}
}

// Export serializes the result in the requested format. The converter path
// never returns an error: when pandoc is missing or fails, the plain-text
// rendering plus a manual-conversion hint comes back instead.
func (e *Exporter) Export(ctx context.Context, result discovery.Result, format Format) string {
	switch format {
	case FormatMarkdown:
		return RenderMarkdown(result)
	case FormatText:
		return RenderText(result)
	case FormatPDF, FormatDOCX:
		return e.convert(ctx, result, format)
	default:
		return RenderText(result)
	}
}

// convert writes the Markdown rendering to a fresh temp directory and runs
// pandoc over it.
func (e *Exporter) convert(ctx context.Context, result discovery.Result, format Format) string {
	markdown := RenderMarkdown(result)

	pandocPath, err := e.lookPath("pandoc")
	if err != nil {
		return fallbackMessage(result, format)
	}

	dir, err := e.tempDir("", "learning-export-")
	if err != nil {
		log.Warn().Err(err).Msg("Could not create export temp directory")
		return fallbackMessage(result, format)
	}

	inPath := filepath.Join(dir, "result.md")
	outPath := filepath.Join(dir, "result."+string(format))
	if err := os.WriteFile(inPath, []byte(markdown), 0o644); err != nil {
		log.Warn().Err(err).Msg("Could not write export input file")
		os.RemoveAll(dir)
		return fallbackMessage(result, format)
	}

	if err := e.run(ctx, pandocPath, inPath, "-o", outPath, "--from=markdown", "--standalone"); err != nil {
		log.Warn().Err(err).Str("format", string(format)).Msg("Pandoc conversion failed")
		os.RemoveAll(dir)
		return fmt.Sprintf("Pandoc conversion to %s failed (%v). Falling back to plain text. "+
			"To convert manually, run: pandoc result.md -o result.%s --from=markdown --standalone\n\n%s",
			strings.ToUpper(string(format)), err, format, RenderText(result))
	}

	info, err := os.Stat(outPath)
	if err != nil {
		os.RemoveAll(dir)
		return fmt.Sprintf("Pandoc reported success but produced no output. Falling back to plain text. "+
			"To convert manually, run: pandoc result.md -o result.%s --from=markdown --standalone\n\n%s",
			format, RenderText(result))
	}

	// The output file outlives the call; cleanup of stale learning-export-*
	// directories is left to the OS temp reaper.
	return fmt.Sprintf("Exported %d resources to %s (%d bytes).", len(result.Resources), outPath, info.Size())
}

func fallbackMessage(result discovery.Result, format Format) string {
	return fmt.Sprintf(
		"Pandoc is not installed, so %s conversion is unavailable. "+
			"Install pandoc and run: pandoc result.md -o result.%s --from=markdown --standalone\n\n%s",
		strings.ToUpper(string(format)), format, RenderText(result))
}
