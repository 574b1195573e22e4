package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/hanko-field/emoji/internal/emoji"
	"github.com/hanko-field/emoji/internal/platform/textutil"
)

// SearchEntry is one searchable variant with its keywords, native language first.
type SearchEntry struct {
	Variant  emoji.Variant
	Keywords []string
}

// SearchResult is a ranked match returned by Search.
type SearchResult struct {
	Variant emoji.Variant
	// Keyword is the keyword that matched the query.
	Keyword string
	// Prefix is true when the keyword starts with the query.
	Prefix bool
}

// SearchIndex maps variants to keywords for one language and platform. It is
// immutable once built and safe for concurrent use.
type SearchIndex struct {
	language   string
	platform   emoji.Version
	snapshotID string
	builtAt    time.Time

	entries []SearchEntry
	folded  [][]string
	byKey   map[emoji.Variant]int
}

// newSearchIndex orders entries with compare and precomputes folded keywords.
func newSearchIndex(lang string, platform emoji.Version, snapshotID string, builtAt time.Time, keywords map[emoji.Variant][]string, compare func(a, b emoji.Variant) int) *SearchIndex {
	variants := make([]emoji.Variant, 0, len(keywords))
	for v := range keywords {
		variants = append(variants, v)
	}
	slices.SortFunc(variants, compare)

	idx := &SearchIndex{
		language:   lang,
		platform:   platform,
		snapshotID: snapshotID,
		builtAt:    builtAt,
		entries:    make([]SearchEntry, len(variants)),
		folded:     make([][]string, len(variants)),
		byKey:      make(map[emoji.Variant]int, len(variants)),
	}
	for i, v := range variants {
		words := slices.Clone(keywords[v])
		idx.entries[i] = SearchEntry{Variant: v, Keywords: words}
		folded := make([]string, len(words))
		for j, word := range words {
			folded[j] = textutil.Fold(word)
		}
		idx.folded[i] = folded
		idx.byKey[v] = i
	}
	return idx
}

// Language returns the normalised language code the index was built for.
func (s *SearchIndex) Language() string { return s.language }

// Platform returns the platform release used to filter entries.
func (s *SearchIndex) Platform() emoji.Version { return s.platform }

// SnapshotID identifies this build; rebuilding yields a new identifier.
func (s *SearchIndex) SnapshotID() string { return s.snapshotID }

// BuiltAt returns when the index was built.
func (s *SearchIndex) BuiltAt() time.Time { return s.builtAt }

// Len returns the number of indexed variants.
func (s *SearchIndex) Len() int { return len(s.entries) }

// Keywords returns a copy of the keywords of v.
func (s *SearchIndex) Keywords(v emoji.Variant) ([]string, bool) {
	i, ok := s.byKey[v]
	if !ok {
		return nil, false
	}
	return slices.Clone(s.entries[i].Keywords), true
}

// Variants lists the indexed variants in catalog order.
func (s *SearchIndex) Variants() []emoji.Variant {
	out := make([]emoji.Variant, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Variant
	}
	return out
}

// Entries returns a copy of all entries in catalog order.
func (s *SearchIndex) Entries() []SearchEntry {
	out := make([]SearchEntry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = SearchEntry{Variant: entry.Variant, Keywords: slices.Clone(entry.Keywords)}
	}
	return out
}

type searchHit struct {
	entry    int
	position int
	prefix   bool
}

// Search matches query case-insensitively against keywords. Each variant is
// ranked by its earliest matching keyword, prefix matches before substring
// matches at the same position, then by catalog order. A non-positive limit
// returns every match.
func (s *SearchIndex) Search(query string, limit int) []SearchResult {
	needle := textutil.Fold(strings.Join(strings.Fields(query), " "))
	if needle == "" {
		return nil
	}

	var hits []searchHit
	for i, words := range s.folded {
		for position, word := range words {
			if strings.HasPrefix(word, needle) {
				hits = append(hits, searchHit{entry: i, position: position, prefix: true})
				break
			}
			if strings.Contains(word, needle) {
				hits = append(hits, searchHit{entry: i, position: position})
				break
			}
		}
	}

	slices.SortFunc(hits, func(a, b searchHit) int {
		if c := cmp.Compare(a.position, b.position); c != 0 {
			return c
		}
		if a.prefix != b.prefix {
			if a.prefix {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.entry, b.entry)
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]SearchResult, len(hits))
	for i, hit := range hits {
		entry := s.entries[hit.entry]
		results[i] = SearchResult{
			Variant: entry.Variant,
			Keyword: entry.Keywords[hit.position],
			Prefix:  hit.prefix,
		}
	}
	return results
}
