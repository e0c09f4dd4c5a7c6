package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharshpoddar/learning-gateway/internal/vault"
)

func seedStore(t *testing.T) *vault.Store {
	t.Helper()
	store, err := vault.NewStore(vault.SeedRecords())
	require.NoError(t, err)
	return store
}

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		mode  SearchMode
	}{
		{`"JUnit 5 docs"`, ModeSpecific},
		{"https://junit.org/junit5", ModeSpecific},
		{"docs for kubernetes", ModeSpecific},
		{"official python reference", ModeSpecific},
		{"I want to learn programming", ModeExploratory},
		{"beginner java", ModeExploratory},
		{"recommend a book on testing", ModeExploratory},
		{"not sure where to start", ModeExploratory},
		{"java concurrency", ModeVague},
		{"design patterns", ModeVague},
		// SPECIFIC beats EXPLORATORY when both trigger
		{"official docs to learn docker", ModeSpecific},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.mode, Classify(tt.query))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize(`Learn "Java" concurrency, now! v2 is OK`)
	assert.Equal(t, []string{"learn", "java", "concurrency", "now"}, tokens)
}

func TestDiscover_SpecificQuery(t *testing.T) {
	engine := NewEngine(seedStore(t))

	result := engine.Discover(`"JUnit 5 docs"`, 0)
	assert.Equal(t, ModeSpecific, result.Mode)
	require.NotEmpty(t, result.Resources)

	top := result.Resources[0]
	assert.Equal(t, "junit5-user-guide", top.Resource.ID)
	assert.GreaterOrEqual(t, top.Score, 85)
	assert.Empty(t, result.Suggestions)
	assert.Contains(t, result.Concepts, vault.ConceptTesting)
}

func TestDiscover_VagueQuery(t *testing.T) {
	engine := NewEngine(seedStore(t))

	result := engine.Discover("java concurrency", 0)
	assert.Equal(t, ModeVague, result.Mode)
	require.NotEmpty(t, result.Resources)

	// the clear concurrency+java record must be present
	found := false
	for _, sr := range result.Resources {
		if sr.Resource.ID == "jcip" {
			found = true
		}
		assert.GreaterOrEqual(t, sr.Score, 20, "records below the VAGUE threshold are dropped")
	}
	assert.True(t, found, "Java Concurrency in Practice should match")
	assert.Contains(t, result.Concepts, vault.ConceptConcurrency)
	assert.Contains(t, result.Categories, vault.CategoryJava)

	// ordered by score descending
	for i := 1; i < len(result.Resources); i++ {
		assert.LessOrEqual(t, result.Resources[i].Score, result.Resources[i-1].Score)
	}
}

func TestDiscover_ExploratoryQuery(t *testing.T) {
	engine := NewEngine(seedStore(t))

	result := engine.Discover("I want to learn programming", 0)
	assert.Equal(t, ModeExploratory, result.Mode)
	require.NotEmpty(t, result.Resources)

	top := result.Resources[0].Resource
	assert.Equal(t, vault.Beginner, top.Difficulty)
	assert.True(t, top.Official)

	require.NotEmpty(t, result.Suggestions, "exploratory queries always get broader suggestions")
	assert.Contains(t, result.Suggestions[0], "broader topic")
}

func TestDiscover_NoMatchesGivesDidYouMean(t *testing.T) {
	engine := NewEngine(seedStore(t))

	result := engine.Discover("junit quantum blockchain", 0)
	if len(result.Resources) == 0 {
		require.NotEmpty(t, result.Suggestions)
		assert.Contains(t, result.Suggestions[0], "Did you mean")
	}
}

func TestDiscover_Deterministic(t *testing.T) {
	engine := NewEngine(seedStore(t))

	first := engine.Discover("java concurrency", 0)
	second := engine.Discover("java concurrency", 0)

	require.Equal(t, len(first.Resources), len(second.Resources))
	for i := range first.Resources {
		assert.Equal(t, first.Resources[i].Resource.ID, second.Resources[i].Resource.ID)
		assert.Equal(t, first.Resources[i].Score, second.Resources[i].Score)
	}
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Suggestions, second.Suggestions)
}

func TestDiscover_ScoreBounds(t *testing.T) {
	engine := NewEngine(seedStore(t))
	for _, query := range []string{
		`"JUnit 5 docs"`, "java concurrency", "learn docker", "zzz nothing",
		"official kubernetes docs", "design patterns clean code solid",
	} {
		result := engine.Discover(query, 50)
		for _, sr := range result.Resources {
			assert.GreaterOrEqual(t, sr.Score, 0)
			assert.LessOrEqual(t, sr.Score, 100)
		}
	}
}

func TestDiscover_LimitClamping(t *testing.T) {
	engine := NewEngine(seedStore(t))

	result := engine.Discover("learn programming", 2)
	assert.LessOrEqual(t, len(result.Resources), 2)

	result = engine.Discover("learn programming", 500)
	assert.LessOrEqual(t, len(result.Resources), maxLimit)
}

func TestDiscover_Summary(t *testing.T) {
	engine := NewEngine(seedStore(t))
	result := engine.Discover("java concurrency", 0)
	assert.Contains(t, result.Summary, "mode VAGUE")
	assert.Contains(t, result.Summary, "CONCURRENCY")
	assert.Contains(t, result.Summary, "JAVA")
}
