// Package discovery ranks learning resources against free-form queries. A
// query is classified into a search mode, keywords are resolved into concept
// and category inferences, and every record is scored along weighted
// dimensions. Scoring is pure and deterministic: a fixed vault and query
// always produce the same ordered list.
package discovery

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

// SearchMode classifies the intent of a query.
type SearchMode string

const (
	ModeSpecific    SearchMode = "SPECIFIC"
	ModeVague       SearchMode = "VAGUE"
	ModeExploratory SearchMode = "EXPLORATORY"
)

// ScoredResource pairs a record with its score in [0,100].
type ScoredResource struct {
	Resource vault.ResourceRecord
	Score    int
}

// Result is the full discovery envelope.
type Result struct {
	Query       string
	Mode        SearchMode
	Resources   []ScoredResource
	Summary     string
	Suggestions []string
	Keywords    []string
	Concepts    []vault.ConceptArea
	Categories  []vault.Category
}

const (
	defaultLimit = 10
	maxLimit     = 50

	weightTitle      = 0.25
	weightConcepts   = 0.20
	weightCategories = 0.15
	weightTags       = 0.10
	weightDifficulty = 0.10
	weightOfficial   = 0.10
	weightFreshness  = 0.10
)

// modeThresholds drop weak matches; looser modes keep weaker hits.
var modeThresholds = map[SearchMode]int{
	ModeSpecific:    30,
	ModeVague:       20,
	ModeExploratory: 10,
}

var specificTriggers = []string{"docs for", "reference for", "official"}

var exploratoryTriggers = []string{
	"learn", "beginner", "getting started", "recommend",
	"help me", "not sure", "new to", "where do i start",
}

// Classify buckets a query into a search mode. When triggers for several
// modes coexist, SPECIFIC beats EXPLORATORY beats VAGUE.
func Classify(query string) SearchMode {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)

	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") || strings.Contains(lower, "www.") {
		return ModeSpecific
	}
	if len(trimmed) > 1 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return ModeSpecific
	}
	for _, trigger := range specificTriggers {
		if strings.Contains(lower, trigger) {
			return ModeSpecific
		}
	}
	for _, trigger := range exploratoryTriggers {
		if strings.Contains(lower, trigger) {
			return ModeExploratory
		}
	}
	return ModeVague
}

// Tokenize lowercases, splits on whitespace and punctuation, and drops
// stopword tokens of two characters or fewer.
func Tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	var tokens []string
	for _, f := range fields {
		if len(f) <= 2 {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// inference holds the concept/category sets resolved from query tokens.
type inference struct {
	concepts   map[vault.ConceptArea]bool
	categories map[vault.Category]bool
}

func infer(tokens []string) inference {
	inf := inference{
		concepts:   make(map[vault.ConceptArea]bool),
		categories: make(map[vault.Category]bool),
	}
	for _, tok := range tokens {
		for _, c := range conceptKeywords[tok] {
			inf.concepts[c] = true
		}
		for _, c := range categoryKeywords[tok] {
			inf.categories[c] = true
		}
	}
	return inf
}

func (inf inference) sortedConcepts() []vault.ConceptArea {
	out := make([]vault.ConceptArea, 0, len(inf.concepts))
	for c := range inf.concepts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (inf inference) sortedCategories() []vault.Category {
	out := make([]vault.Category, 0, len(inf.categories))
	for c := range inf.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Engine scores vault records against queries.
type Engine struct {
	store *vault.Store
}

// NewEngine binds the engine to a store.
func NewEngine(store *vault.Store) *Engine {
	return &Engine{store: store}
}

// Discover classifies, scores, orders, and summarizes. limit defaults to 10
// and is capped at 50.
func (e *Engine) Discover(query string, limit int) Result {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	mode := Classify(query)
	// Quoted queries match titles without their quoting.
	cleaned := strings.Trim(strings.TrimSpace(query), `"`)
	tokens := Tokenize(cleaned)
	inf := infer(tokens)

	records := e.store.All()
	scored := make([]ScoredResource, 0, len(records))
	threshold := modeThresholds[mode]
	for _, r := range records {
		score := scoreRecord(r, cleaned, tokens, inf, mode)
		if score < threshold {
			continue
		}
		scored = append(scored, ScoredResource{Resource: r, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Resource.Official != b.Resource.Official {
			return a.Resource.Official
		}
		if ra, rb := a.Resource.Freshness.Rank(), b.Resource.Freshness.Rank(); ra != rb {
			return ra > rb
		}
		return a.Resource.Title < b.Resource.Title
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	concepts := inf.sortedConcepts()
	categories := inf.sortedCategories()

	result := Result{
		Query:      query,
		Mode:       mode,
		Resources:  scored,
		Keywords:   tokens,
		Concepts:   concepts,
		Categories: categories,
		Summary:    buildSummary(len(scored), mode, concepts, categories),
	}
	result.Suggestions = e.buildSuggestions(result, records, tokens, inf)

	log.Debug().Str("query", query).Str("mode", string(mode)).Int("matches", len(scored)).
		Msg("Discovery completed")
	return result
}

// scoreRecord computes the weighted dimension sum, rounded to [0,100].
func scoreRecord(r vault.ResourceRecord, query string, tokens []string, inf inference, mode SearchMode) int {
	total := weightTitle*titleScore(r, query, tokens) +
		weightConcepts*conceptScore(r, inf) +
		weightCategories*categoryScore(r, inf) +
		weightTags*tagScore(r, tokens) +
		weightDifficulty*difficultyScore(r, mode) +
		weightOfficial*officialScore(r, mode) +
		weightFreshness*freshnessScore(r)

	score := int(math.Round(100 * total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func titleScore(r vault.ResourceRecord, query string, tokens []string) float64 {
	title := strings.ToLower(r.Title)
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" && strings.Contains(title, q) {
		return 1
	}
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			return 0.6
		}
	}
	return 0
}

func conceptScore(r vault.ResourceRecord, inf inference) float64 {
	if len(inf.concepts) == 0 {
		return 0
	}
	overlap := 0
	for c := range inf.concepts {
		if r.HasConcept(c) {
			overlap++
		}
	}
	return float64(overlap) / float64(len(inf.concepts))
}

func categoryScore(r vault.ResourceRecord, inf inference) float64 {
	if len(inf.categories) == 0 {
		return 0
	}
	overlap := 0
	for c := range inf.categories {
		if r.HasCategory(c) {
			overlap++
		}
	}
	return float64(overlap) / float64(len(inf.categories))
}

func tagScore(r vault.ResourceRecord, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	tags := make(map[string]bool, len(r.Tags))
	for _, t := range r.Tags {
		tags[strings.ToLower(t)] = true
	}
	hits := 0
	for _, tok := range tokens {
		if tags[tok] {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

func difficultyScore(r vault.ResourceRecord, mode SearchMode) float64 {
	switch mode {
	case ModeExploratory:
		if r.Difficulty == vault.Beginner {
			return 1
		}
		return 0.5
	case ModeSpecific:
		return 1
	default: // VAGUE
		if r.Difficulty == vault.Intermediate {
			return 1
		}
		return 0.7
	}
}

func officialScore(r vault.ResourceRecord, mode SearchMode) float64 {
	if r.Official && (mode == ModeSpecific || mode == ModeExploratory) {
		return 1
	}
	return 0.5
}

func freshnessScore(r vault.ResourceRecord) float64 {
	switch r.Freshness {
	case vault.Evergreen, vault.ActivelyMaintained:
		return 1
	case vault.PeriodicallyUpdated:
		return 0.7
	case vault.Historical:
		return 0.4
	default: // ARCHIVED or unknown
		return 0.1
	}
}

func buildSummary(count int, mode SearchMode, concepts []vault.ConceptArea, categories []vault.Category) string {
	conceptNames := "none"
	if len(concepts) > 0 {
		names := make([]string, len(concepts))
		for i, c := range concepts {
			names[i] = string(c)
		}
		conceptNames = strings.Join(names, ", ")
	}
	categoryNames := "none"
	if len(categories) > 0 {
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = string(c)
		}
		categoryNames = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%d matches for mode %s; resolved concepts: %s; categories: %s",
		count, mode, conceptNames, categoryNames)
}

// buildSuggestions fills "Did you mean" hints when nothing matched and,
// for exploratory queries, appends up to three adjacent-topic suggestions.
func (e *Engine) buildSuggestions(result Result, records []vault.ResourceRecord, tokens []string, inf inference) []string {
	var suggestions []string

	if len(result.Resources) == 0 {
		titles := didYouMeanTitles(records, tokens)
		for _, title := range titles {
			suggestions = append(suggestions, fmt.Sprintf("Did you mean %q?", title))
		}
		if len(titles) == 0 {
			for _, c := range inf.sortedConcepts() {
				suggestions = append(suggestions, fmt.Sprintf("Browse the %s concept area", c))
				if len(suggestions) >= 5 {
					break
				}
			}
		}
	}

	if result.Mode == ModeExploratory {
		added := 0
		seen := make(map[vault.ConceptArea]bool)
		for _, c := range inf.sortedConcepts() {
			seen[c] = true
		}
		for _, c := range inf.sortedConcepts() {
			for _, adj := range adjacentConcepts[c] {
				if seen[adj] {
					continue
				}
				seen[adj] = true
				suggestions = append(suggestions, fmt.Sprintf("Explore the broader topic %s", adj))
				added++
				if added >= 3 {
					return suggestions
				}
			}
		}
		if added == 0 {
			// No inference to widen from: point at starter topics.
			suggestions = append(suggestions,
				fmt.Sprintf("Explore the broader topic %s", vault.ConceptProgrammingBasics))
		}
	}
	return suggestions
}

// didYouMeanTitles picks up to five titles containing any query token.
func didYouMeanTitles(records []vault.ResourceRecord, tokens []string) []string {
	var titles []string
	for _, r := range records {
		title := strings.ToLower(r.Title)
		for _, tok := range tokens {
			if strings.Contains(title, tok) {
				titles = append(titles, r.Title)
				break
			}
		}
		if len(titles) >= 5 {
			break
		}
	}
	sort.Strings(titles)
	return titles
}
