package vault

import (
	"fmt"
	"strings"
	"sync"

	wildcard "github.com/IGLOU-EU/go-wildcard/v2"
)

// Store is the indexed resource collection. The seed set is read-only after
// hydration; session-local additions append under an exclusive lock so
// concurrent readers never observe a partial record.
type Store struct {
	mu    sync.RWMutex
	seed  []ResourceRecord
	added []ResourceRecord
	index map[string]ResourceRecord
}

// NewStore hydrates a store from seed records. Duplicate ids are rejected.
func NewStore(seed []ResourceRecord) (*Store, error) {
	s := &Store{
		seed:  make([]ResourceRecord, 0, len(seed)),
		index: make(map[string]ResourceRecord, len(seed)),
	}
	for _, r := range seed {
		if r.ID == "" {
			return nil, fmt.Errorf("seed record %q has no id", r.Title)
		}
		if _, exists := s.index[r.ID]; exists {
			return nil, fmt.Errorf("duplicate seed record id %q", r.ID)
		}
		clone := r.Clone()
		s.seed = append(s.seed, clone)
		s.index[r.ID] = clone
	}
	return s, nil
}

// Len reports the combined record count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seed) + len(s.added)
}

// All returns a combined snapshot copy: seed records first, then
// session-local additions in insertion order.
func (s *Store) All() []ResourceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ResourceRecord, 0, len(s.seed)+len(s.added))
	for _, r := range s.seed {
		out = append(out, r.Clone())
	}
	for _, r := range s.added {
		out = append(out, r.Clone())
	}
	return out
}

// Get looks up a record by id.
func (s *Store) Get(id string) (ResourceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.index[id]
	if !ok {
		return ResourceRecord{}, false
	}
	return r.Clone(), true
}

// Add stages a session-local record. It is visible to subsequent reads but
// never persisted back to the seed source.
func (s *Store) Add(r ResourceRecord) error {
	if r.ID == "" {
		return fmt.Errorf("record has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[r.ID]; exists {
		return fmt.Errorf("record id %q already exists", r.ID)
	}
	clone := r.Clone()
	s.added = append(s.added, clone)
	s.index[r.ID] = clone
	return nil
}

// Filter selects records during a browse scan. Zero values match everything.
type Filter struct {
	Category      Category
	Concept       ConceptArea
	Type          ResourceType
	Freshness     Freshness
	MinDifficulty Difficulty
	MaxDifficulty Difficulty
	// Pattern is a wildcard expression matched case-insensitively against
	// the title and each tag, e.g. "*concurrency*".
	Pattern  string
	FreeOnly bool
}

func (f Filter) matches(r ResourceRecord) bool {
	if f.Category != "" && !r.HasCategory(f.Category) {
		return false
	}
	if f.Concept != "" && !r.HasConcept(f.Concept) {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Freshness != "" && r.Freshness != f.Freshness {
		return false
	}
	if f.MinDifficulty != 0 && r.Difficulty < f.MinDifficulty {
		return false
	}
	if f.MaxDifficulty != 0 && r.Difficulty > f.MaxDifficulty {
		return false
	}
	if f.FreeOnly && !r.Free {
		return false
	}
	if f.Pattern != "" && !matchesPattern(f.Pattern, r) {
		return false
	}
	return true
}

func matchesPattern(pattern string, r ResourceRecord) bool {
	pattern = strings.ToLower(pattern)
	if wildcard.Match(pattern, strings.ToLower(r.Title)) {
		return true
	}
	for _, tag := range r.Tags {
		if wildcard.Match(pattern, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// Browse scans the combined collection with the given filter.
func (s *Store) Browse(f Filter) []ResourceRecord {
	var out []ResourceRecord
	for _, r := range s.All() {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}
