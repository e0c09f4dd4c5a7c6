package scrape

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

type fakeFetcher struct {
	body []byte
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, string, error) {
	return f.body, "text/html", f.err
}

const samplePage = `<html>
<head><title>Fallback Title</title><style>body { color: red; }</style></head>
<body>
<script>var tracker = "ignore me";</script>
<h1>Getting Started with Widgets</h1>
<p>Widgets are small &amp; simple. They are easy to use.</p>
<p>This guide walks through the basics step by step so anyone can follow along.</p>
</body></html>`

func TestScrape_BuildsSummary(t *testing.T) {
	scraper := NewScraper(&fakeFetcher{body: []byte(samplePage)})

	cs, err := scraper.Scrape(context.Background(), "https://example.com/widgets")
	require.NoError(t, err)

	assert.Equal(t, "Getting Started with Widgets", cs.Title)
	assert.Equal(t, "Widgets are small & simple. They are easy to use.", cs.Summary)
	assert.NotContains(t, cs.Summary, "tracker", "script content is stripped")
	assert.Greater(t, cs.WordCount, 0)
	assert.Equal(t, 1, cs.ReadingMinutes)
	assert.Equal(t, vault.Beginner, cs.Difficulty)
}

func TestScrape_TitleFallsBackToDocumentTitle(t *testing.T) {
	scraper := NewScraper(&fakeFetcher{body: []byte(`<html><head><title>Only Title</title></head><body><p>Hello there. More text.</p></body></html>`)})
	cs, err := scraper.Scrape(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Only Title", cs.Title)
}

func TestScrape_BlankURL(t *testing.T) {
	scraper := NewScraper(&fakeFetcher{})
	_, err := scraper.Scrape(context.Background(), "  ")
	require.Error(t, err)
}

func TestScrape_FetchErrorPassesThrough(t *testing.T) {
	wantErr := errors.New("boom")
	scraper := NewScraper(&fakeFetcher{err: wantErr})
	_, err := scraper.Scrape(context.Background(), "https://example.com")
	require.ErrorIs(t, err, wantErr)
}

func TestExtractText_Entities(t *testing.T) {
	text := ExtractText(`a &amp; b &lt;tag&gt; &quot;q&quot; it&#39;s x&nbsp;y`)
	assert.Equal(t, `a & b <tag> "q" it's x y`, text)
}

func TestRateDifficulty_ExpertContent(t *testing.T) {
	// long sentences stuffed with advanced vocabulary and heavy code blocks
	sentence := "The linearizability of a lock-free quorum protocol under byzantine faults requires an invariant over the consensus rounds and careful reasoning about the memory barrier semantics of each amortized step in the replicated log across every participating node in the cluster. "
	html := "<h1>Deep Dive</h1>" + strings.Repeat("<pre>code</pre>", 12) + "<p>" + strings.Repeat(sentence, 10) + "</p>"

	scraper := NewScraper(&fakeFetcher{body: []byte(html)})
	cs, err := scraper.Scrape(context.Background(), "https://example.com/deep")
	require.NoError(t, err)
	assert.Equal(t, vault.Expert, cs.Difficulty)
	assert.Equal(t, 12, cs.CodeBlocks)
}

func TestRateDifficulty_EmptyBody(t *testing.T) {
	scraper := NewScraper(&fakeFetcher{body: []byte("")})
	cs, err := scraper.Scrape(context.Background(), "https://example.com/empty")
	require.NoError(t, err)
	assert.Equal(t, 0, cs.WordCount)
	assert.Equal(t, 0, cs.ReadingMinutes)
	assert.Equal(t, vault.Beginner, cs.Difficulty)
}

func TestLeadSummary_NoSentences(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := leadSummary(strings.TrimSpace(long))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 250)
}
