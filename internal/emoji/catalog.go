package emoji

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	variationSelector16   = "\uFE0F"
	firstTonePlaceholder  = "{1}"
	secondTonePlaceholder = "{2}"
)

var errInvalidCatalog = errors.New("emoji: invalid catalog")

// ErrInvalidCatalog wraps every validation failure reported by NewCatalog.
var ErrInvalidCatalog = errInvalidCatalog

// ID is the stable symbolic identifier of a base emoji, e.g. "thumbsUpSign".
type ID string

type ruleKind uint8

const (
	ruleNone ruleKind = iota
	ruleModifier
	rulePair
)

// VariantRule declares how an entry's skin tone variants are rendered.
// The zero value declares no variants.
type VariantRule struct {
	kind ruleKind
	same string
	pair string
}

// NoTones declares an entry without skin tone variants.
func NoTones() VariantRule { return VariantRule{} }

// ModifierTones declares five single-tone variants rendered by placing the
// modifier right after the first code point of the default sequence, replacing
// a VS16 that may follow it.
func ModifierTones() VariantRule { return VariantRule{kind: ruleModifier} }

// PairTones declares 25 two-tone variants for multi-person glyphs. pair is a
// template with {1} and {2} placeholders for the left and right modifier.
// same, when not empty, is a {1}-only template used when both tones match.
func PairTones(same, pair string) VariantRule {
	return VariantRule{kind: rulePair, same: same, pair: pair}
}

// SupportsTones reports whether the rule yields any variant.
func (r VariantRule) SupportsTones() bool { return r.kind != ruleNone }

// Arity returns how many tones each variant key holds (0, 1 or 2).
func (r VariantRule) Arity() int {
	switch r.kind {
	case ruleModifier:
		return 1
	case rulePair:
		return 2
	}
	return 0
}

// keys enumerates the tone sequences of the rule in a fixed order: by rank,
// left position first.
func (r VariantRule) keys() []ToneSequence {
	tones := SkinTones()
	switch r.kind {
	case ruleModifier:
		out := make([]ToneSequence, 0, len(tones))
		for _, tone := range tones {
			out = append(out, Single(tone))
		}
		return out
	case rulePair:
		out := make([]ToneSequence, 0, len(tones)*len(tones))
		for _, left := range tones {
			for _, right := range tones {
				out = append(out, Pair(left, right))
			}
		}
		return out
	}
	return nil
}

func (r VariantRule) render(def string, tones ToneSequence) (string, bool) {
	if tones.Len() != r.Arity() || tones.Len() == 0 {
		return "", false
	}
	switch r.kind {
	case ruleModifier:
		return insertModifier(def, tones.At(0).Modifier()), true
	case rulePair:
		left, right := tones.At(0), tones.At(1)
		if left == right && r.same != "" {
			return strings.ReplaceAll(r.same, firstTonePlaceholder, string(left.Modifier())), true
		}
		return strings.NewReplacer(
			firstTonePlaceholder, string(left.Modifier()),
			secondTonePlaceholder, string(right.Modifier()),
		).Replace(r.pair), true
	}
	return "", false
}

func (r VariantRule) validate() error {
	switch r.kind {
	case ruleNone, ruleModifier:
		return nil
	case rulePair:
		if !strings.Contains(r.pair, firstTonePlaceholder) || !strings.Contains(r.pair, secondTonePlaceholder) {
			return errors.New("pair template needs {1} and {2}")
		}
		if r.same != "" && (!strings.Contains(r.same, firstTonePlaceholder) || strings.Contains(r.same, secondTonePlaceholder)) {
			return errors.New("same-tone template needs exactly the {1} placeholder")
		}
		return nil
	}
	return fmt.Errorf("unknown rule kind %d", r.kind)
}

func insertModifier(def string, modifier rune) string {
	first, size := utf8.DecodeRuneInString(def)
	if first == utf8.RuneError && size <= 1 {
		return def
	}
	rest := strings.TrimPrefix(def[size:], variationSelector16)
	return def[:size] + string(modifier) + rest
}

// Entry is one row of the catalog.
type Entry struct {
	ID         ID
	Default    string
	SortOrder  int
	Introduced Version
	Tones      VariantRule
}

// Catalog is the immutable table of base emoji in declaration order.
type Catalog struct {
	entries   []Entry
	byID      map[ID]int
	byDefault map[string]ID
}

// NewCatalog validates entries and builds lookup tables. Identifiers and sort
// orders must be unique. When two entries share a default sequence the first
// declared one owns it.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries:   make([]Entry, len(entries)),
		byID:      make(map[ID]int, len(entries)),
		byDefault: make(map[string]ID, len(entries)),
	}
	copy(c.entries, entries)

	sortOrders := make(map[int]ID, len(entries))
	var problems []string
	for i, entry := range c.entries {
		id := ID(strings.TrimSpace(string(entry.ID)))
		if id == "" {
			problems = append(problems, fmt.Sprintf("entry %d: id is required", i))
			continue
		}
		if _, dup := c.byID[id]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate id", id))
			continue
		}
		if entry.Default == "" || !utf8.ValidString(entry.Default) {
			problems = append(problems, fmt.Sprintf("%s: default sequence must be valid, non-empty UTF-8", id))
			continue
		}
		if owner, dup := sortOrders[entry.SortOrder]; dup {
			problems = append(problems, fmt.Sprintf("%s: sort order %d already used by %s", id, entry.SortOrder, owner))
			continue
		}
		if err := entry.Tones.validate(); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		sortOrders[entry.SortOrder] = id
		c.entries[i].ID = id
		c.byID[id] = i
		if _, taken := c.byDefault[entry.Default]; !taken {
			c.byDefault[entry.Default] = id
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", errInvalidCatalog, strings.Join(problems, "; "))
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog table.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(catalogEntries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entry returns the entry for id.
func (c *Catalog) Entry(id ID) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all entries in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup interprets rendered as the bare default sequence of an entry.
func (c *Catalog) Lookup(rendered string) (ID, bool) {
	id, ok := c.byDefault[rendered]
	return id, ok
}

// SortOrder returns the total order key of id; unknown identifiers sort last.
func (c *Catalog) SortOrder(id ID) (int, bool) {
	entry, ok := c.Entry(id)
	if !ok {
		return 0, false
	}
	return entry.SortOrder, true
}

// Sort orders ids in place by catalog sort order. Unknown identifiers are
// moved to the end, ordered by identifier.
func (c *Catalog) Sort(ids []ID) {
	slices.SortStableFunc(ids, func(a, b ID) int {
		oa, okA := c.SortOrder(a)
		ob, okB := c.SortOrder(b)
		switch {
		case okA && okB:
			return cmp.Compare(oa, ob)
		case okA:
			return -1
		case okB:
			return 1
		}
		return strings.Compare(string(a), string(b))
	})
}
