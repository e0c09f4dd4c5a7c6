// Package scrape fetches a URL, reduces the document to readable text, and
// derives a summary envelope with an estimated difficulty.
package scrape

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

// Fetcher is the slice of the HTTP engine the scraper needs: a plain GET
// with no credential injection.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (body []byte, contentType string, err error)
}

// ContentSummary is the envelope returned for a scraped page.
type ContentSummary struct {
	URL            string
	Title          string
	Summary        string
	WordCount      int
	ReadingMinutes int
	CodeBlocks     int
	Difficulty     vault.Difficulty
}

// Scraper drives the fetch-extract-summarize pipeline.
type Scraper struct {
	fetcher Fetcher
}

// NewScraper binds the scraper to a fetcher.
func NewScraper(fetcher Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

const wordsPerMinute = 225

// Scrape fetches the URL and builds the summary envelope.
func (s *Scraper) Scrape(ctx context.Context, url string) (ContentSummary, error) {
	if strings.TrimSpace(url) == "" {
		return ContentSummary{}, fmt.Errorf("url must not be blank")
	}
	body, _, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return ContentSummary{}, err
	}

	html := string(body)
	title := extractTitle(html)
	codeBlocks := countCodeBlocks(html)
	text := bodyText(html)

	words := strings.Fields(text)
	wordCount := len(words)
	readingMinutes := 0
	if wordCount > 0 {
		readingMinutes = int(math.Ceil(float64(wordCount) / wordsPerMinute))
	}

	summary := ContentSummary{
		URL:            url,
		Title:          title,
		Summary:        leadSummary(text),
		WordCount:      wordCount,
		ReadingMinutes: readingMinutes,
		CodeBlocks:     codeBlocks,
		Difficulty:     rateDifficulty(text, wordCount, codeBlocks),
	}
	log.Debug().Str("url", url).Int("words", wordCount).Str("difficulty", summary.Difficulty.String()).
		Msg("Scraped page")
	return summary, nil
}

var (
	headRe     = regexp.MustCompile(`(?is)<head.*?</head>`)
	scriptRe   = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe    = regexp.MustCompile(`(?is)<style.*?</style>`)
	headingsRe = regexp.MustCompile(`(?is)<h[1-6][^>]*>.*?</h[1-6]>`)
	tagRe      = regexp.MustCompile(`(?s)<[^>]*>`)
	headingRe  = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	titleRe    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	codeRe     = regexp.MustCompile(`(?i)<(pre|code)[\s>]`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the handful of entities that matter for plain text.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// ExtractText strips markup and decodes common entities, collapsing runs of
// whitespace to single spaces.
func ExtractText(html string) string {
	text := scriptRe.ReplaceAllString(html, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = entityReplacer.Replace(text)
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// bodyText is the summary source: head, scripts, styles, and headings are
// removed so the lead sentences come from the actual prose.
func bodyText(html string) string {
	text := headRe.ReplaceAllString(html, " ")
	text = scriptRe.ReplaceAllString(text, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = headingsRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = entityReplacer.Replace(text)
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// extractTitle prefers the first <h1> heading, then the document title.
func extractTitle(html string) string {
	if m := headingRe.FindStringSubmatch(html); m != nil {
		if t := ExtractText(m[1]); t != "" {
			return t
		}
	}
	if m := titleRe.FindStringSubmatch(html); m != nil {
		return ExtractText(m[1])
	}
	return ""
}

func countCodeBlocks(html string) int {
	return len(codeRe.FindAllString(html, -1))
}

var sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

// leadSummary takes the first two sentences, falling back to a lead extract
// when the text has no sentence structure.
func leadSummary(text string) string {
	if text == "" {
		return ""
	}
	ends := sentenceEndRe.FindAllStringIndex(text, 2)
	if len(ends) >= 2 {
		return strings.TrimSpace(text[:ends[1][0]+1])
	}
	if len(ends) == 1 {
		return strings.TrimSpace(text[:ends[0][0]+1])
	}
	const leadLen = 240
	if len(text) <= leadLen {
		return text
	}
	cut := strings.LastIndex(text[:leadLen], " ")
	if cut <= 0 {
		cut = leadLen
	}
	return text[:cut] + "..."
}

// advancedKeywords push the readability score toward the expert end.
var advancedKeywords = []string{
	"idempotent", "invariant", "asymptotic", "amortized", "monad",
	"covariance", "memory barrier", "lock-free", "linearizability",
	"byzantine", "quorum", "isolation level", "vectorized", "jit",
	"garbage collector", "consensus", "backpressure",
}

// rateDifficulty scores sentence length, advanced vocabulary, and code
// density, then maps the total onto the difficulty scale.
func rateDifficulty(text string, wordCount, codeBlocks int) vault.Difficulty {
	if wordCount == 0 {
		return vault.Beginner
	}

	sentences := sentenceEndRe.Split(text, -1)
	sentenceCount := 0
	for _, s := range sentences {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgSentenceLen := float64(wordCount) / float64(sentenceCount)

	points := 0
	switch {
	case avgSentenceLen >= 30:
		points += 4
	case avgSentenceLen >= 22:
		points += 3
	case avgSentenceLen >= 16:
		points += 2
	case avgSentenceLen >= 10:
		points += 1
	}

	lower := strings.ToLower(text)
	advanced := 0
	for _, kw := range advancedKeywords {
		if strings.Contains(lower, kw) {
			advanced++
		}
	}
	if advanced > 4 {
		advanced = 4
	}
	points += advanced

	// code density: blocks per 300 words
	density := float64(codeBlocks) / (float64(wordCount) / 300)
	switch {
	case codeBlocks == 0:
	case density >= 2:
		points += 4
	default:
		points += 2
	}

	switch {
	case points <= 2:
		return vault.Beginner
	case points <= 5:
		return vault.Intermediate
	case points <= 8:
		return vault.Advanced
	default:
		return vault.Expert
	}
}
