package emoji

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustDefaultCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return catalog
}

func TestDefaultCatalog_IsValid(t *testing.T) {
	catalog := mustDefaultCatalog(t)

	if catalog.Len() != len(catalogEntries) {
		t.Fatalf("expected %d entries, got %d", len(catalogEntries), catalog.Len())
	}

	seen := make(map[int]ID, catalog.Len())
	for _, entry := range catalog.Entries() {
		if owner, dup := seen[entry.SortOrder]; dup {
			t.Fatalf("sort order %d shared by %s and %s", entry.SortOrder, owner, entry.ID)
		}
		seen[entry.SortOrder] = entry.ID

		if id, ok := catalog.Lookup(entry.Default); !ok || id != entry.ID {
			t.Fatalf("expected default of %s to look up to itself, got %q ok=%v", entry.ID, id, ok)
		}
	}

	for _, id := range append(append([]ID{}, baseReactionIDs...), defaultReactionIDs...) {
		if _, ok := catalog.Entry(id); !ok {
			t.Fatalf("expected reaction id %s in catalog", id)
		}
	}
}

func TestNewCatalog_ReportsInvalidEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name:    "empty id",
			entries: []Entry{{ID: " ", Default: "\U0001F600", SortOrder: 1}},
			want:    "id is required",
		},
		{
			name: "duplicate id",
			entries: []Entry{
				{ID: "grin", Default: "\U0001F600", SortOrder: 1},
				{ID: "grin", Default: "\U0001F601", SortOrder: 2},
			},
			want: "duplicate id",
		},
		{
			name:    "invalid default",
			entries: []Entry{{ID: "broken", Default: "\xff", SortOrder: 1}},
			want:    "default sequence",
		},
		{
			name: "duplicate sort order",
			entries: []Entry{
				{ID: "grin", Default: "\U0001F600", SortOrder: 1},
				{ID: "smile", Default: "\U0001F603", SortOrder: 1},
			},
			want: "sort order 1 already used by grin",
		},
		{
			name:    "pair template without second placeholder",
			entries: []Entry{{ID: "pair", Default: "\U0001F91D", SortOrder: 1, Tones: PairTones("", "\U0001F91D{1}")}},
			want:    "needs {1} and {2}",
		},
		{
			name:    "same template with second placeholder",
			entries: []Entry{{ID: "pair", Default: "\U0001F91D", SortOrder: 1, Tones: PairTones("{1}{2}", "{1}{2}")}},
			want:    "exactly the {1} placeholder",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.entries)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to mention %q, got %v", tc.want, err)
			}
		})
	}
}

func TestNewCatalog_FirstDefaultOwnsSequence(t *testing.T) {
	catalog, err := NewCatalog([]Entry{
		{ID: "first", Default: "\U0001F600", SortOrder: 1},
		{ID: "second", Default: "\U0001F600", SortOrder: 2},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if id, ok := catalog.Lookup("\U0001F600"); !ok || id != "first" {
		t.Fatalf("expected first to own the default, got %q", id)
	}
}

func TestCatalog_Sort(t *testing.T) {
	catalog, err := NewCatalog([]Entry{
		{ID: "c", Default: "\U0001F600", SortOrder: 30},
		{ID: "a", Default: "\U0001F601", SortOrder: 10},
		{ID: "b", Default: "\U0001F602", SortOrder: 20},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	ids := []ID{"zzz", "c", "unknown", "a", "b"}
	catalog.Sort(ids)

	expected := []ID{"a", "b", "c", "unknown", "zzz"}
	if !reflect.DeepEqual(ids, expected) {
		t.Fatalf("expected %v got %v", expected, ids)
	}
}

func TestVariantRule_Render(t *testing.T) {
	t.Run("modifier replaces trailing vs16", func(t *testing.T) {
		rule := ModifierTones()
		got, ok := rule.render("\u270C\uFE0F", Single(SkinToneDark))
		if !ok || got != "\u270C\U0001F3FF" {
			t.Fatalf("expected victory hand with dark modifier, got %q ok=%v", got, ok)
		}
	})

	t.Run("modifier keeps zwj tail", func(t *testing.T) {
		rule := ModifierTones()
		got, _ := rule.render("\U0001F937\u200D\u2640\uFE0F", Single(SkinToneLight))
		if got != "\U0001F937\U0001F3FB\u200D\u2640\uFE0F" {
			t.Fatalf("unexpected rendering %q", got)
		}
	})

	t.Run("pair uses same template for matching tones", func(t *testing.T) {
		rule := PairTones("\U0001F91D{1}", "\U0001FAF1{1}\u200D\U0001FAF2{2}")
		same, _ := rule.render("\U0001F91D", Pair(SkinToneMedium, SkinToneMedium))
		if same != "\U0001F91D\U0001F3FD" {
			t.Fatalf("unexpected same-tone rendering %q", same)
		}
		mixed, _ := rule.render("\U0001F91D", Pair(SkinToneLight, SkinToneDark))
		if mixed != "\U0001FAF1\U0001F3FB\u200D\U0001FAF2\U0001F3FF" {
			t.Fatalf("unexpected mixed rendering %q", mixed)
		}
	})

	t.Run("arity mismatch is rejected", func(t *testing.T) {
		if _, ok := ModifierTones().render("\U0001F44D", Pair(SkinToneLight, SkinToneDark)); ok {
			t.Fatalf("expected pair tones to be rejected by modifier rule")
		}
		if _, ok := NoTones().render("\U0001F600", Single(SkinToneLight)); ok {
			t.Fatalf("expected no variants for NoTones")
		}
	})
}
