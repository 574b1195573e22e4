package emoji

import (
	"reflect"
	"slices"
	"sync"
	"testing"
)

func mustDefaultIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(mustDefaultCatalog(t))
}

func TestIndex_RoundTripsEveryVariant(t *testing.T) {
	ix := mustDefaultIndex(t)

	checked := 0
	for id, variants := range ix.VariantTable() {
		for tones, rendered := range variants {
			got, ok := ix.Resolve(rendered)
			if !ok {
				t.Fatalf("expected %q (%s %s) to resolve", rendered, id, tones)
			}
			if got.Base != id || got.Tones != tones {
				t.Fatalf("expected %s %s, got %s %s", id, tones, got.Base, got.Tones)
			}
			checked++
		}
	}
	if checked == 0 || checked != ix.VariantTable().Len() {
		t.Fatalf("expected to check every variant, checked %d", checked)
	}

	for _, entry := range ix.Catalog().Entries() {
		got, ok := ix.Resolve(entry.Default)
		if !ok || got.Base != entry.ID || got.HasTones() {
			t.Fatalf("expected bare %s for %q, got %+v ok=%v", entry.ID, entry.Default, got, ok)
		}
	}
}

func TestIndex_ResolveUnknown(t *testing.T) {
	ix := mustDefaultIndex(t)

	for _, input := range []string{"", "hello", "\U0001F3FB", "\xff\xfe", "\U0001F44D\U0001F3FB\U0001F3FB"} {
		if v, ok := ix.Resolve(input); ok {
			t.Fatalf("expected %q not to resolve, got %+v", input, v)
		}
	}
}

func TestIndex_ResolveToneVariants(t *testing.T) {
	ix := mustDefaultIndex(t)

	cases := []struct {
		rendered string
		base     ID
		tones    ToneSequence
	}{
		{"\U0001F44D\U0001F3FD", ThumbsUpSign, Single(SkinToneMedium)},
		{"\u270C\U0001F3FF", "victoryHand", Single(SkinToneDark)},
		{"\U0001F91D\U0001F3FC", "handshake", Pair(SkinToneMediumLight, SkinToneMediumLight)},
		{"\U0001FAF1\U0001F3FB\u200D\U0001FAF2\U0001F3FF", "handshake", Pair(SkinToneLight, SkinToneDark)},
		{"\U0001F9D1\U0001F3FB\u200D\U0001F91D\u200D\U0001F9D1\U0001F3FB", "peopleHoldingHands", Pair(SkinToneLight, SkinToneLight)},
		{"\U0001F469\U0001F3FE\u200D\U0001F91D\u200D\U0001F468\U0001F3FB", "manAndWomanHoldingHands", Pair(SkinToneMediumDark, SkinToneLight)},
	}
	for _, tc := range cases {
		got, ok := ix.Resolve(tc.rendered)
		if !ok {
			t.Fatalf("expected %q to resolve", tc.rendered)
		}
		if got.Base != tc.base || got.Tones != tc.tones || got.Rendered != tc.rendered {
			t.Fatalf("expected %s %s, got %+v", tc.base, tc.tones, got)
		}
	}
}

func TestNewIndex_CollisionPrecedence(t *testing.T) {
	catalog, err := NewCatalog([]Entry{
		{ID: "wave", Default: "\U0001F44B", SortOrder: 1, Tones: ModifierTones()},
		// Renders the same tone variants as wave because the VS16 is dropped.
		{ID: "waveVS16", Default: "\U0001F44B\uFE0F", SortOrder: 2, Tones: ModifierTones()},
		// Its default equals wave's light variant.
		{ID: "lightWave", Default: "\U0001F44B\U0001F3FB", SortOrder: 3},
		{ID: "lightWaveCopy", Default: "\U0001F44B\U0001F3FB", SortOrder: 4},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	ix := NewIndex(catalog)

	t.Run("later variant wins over earlier variant", func(t *testing.T) {
		got, ok := ix.Resolve("\U0001F44B\U0001F3FF")
		if !ok || got.Base != "waveVS16" || got.Tones != Single(SkinToneDark) {
			t.Fatalf("expected waveVS16 dark, got %+v", got)
		}
	})

	t.Run("default wins over variant", func(t *testing.T) {
		got, ok := ix.Resolve("\U0001F44B\U0001F3FB")
		if !ok || got.Base != "lightWave" || got.HasTones() {
			t.Fatalf("expected bare lightWave, got %+v", got)
		}
	})

	t.Run("bare defaults still resolve", func(t *testing.T) {
		got, ok := ix.Resolve("\U0001F44B\uFE0F")
		if !ok || got.Base != "waveVS16" || got.HasTones() {
			t.Fatalf("expected bare waveVS16, got %+v", got)
		}
	})
}

func TestNewIndex_Deterministic(t *testing.T) {
	catalog := mustDefaultCatalog(t)

	first := NewIndex(catalog)
	second := NewIndex(catalog)
	if !reflect.DeepEqual(first.reverse, second.reverse) {
		t.Fatalf("expected identical reverse indexes")
	}
	if !reflect.DeepEqual(first.variants, second.variants) {
		t.Fatalf("expected identical variant tables")
	}
}

func TestIndex_ConcurrentReads(t *testing.T) {
	ix := mustDefaultIndex(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, entry := range ix.Catalog().Entries() {
				for _, v := range ix.Variants(entry.ID) {
					if got, ok := ix.Resolve(v.Rendered); !ok || got.Base != entry.ID {
						t.Errorf("expected %q to resolve to %s", v.Rendered, entry.ID)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestIndex_Variants(t *testing.T) {
	ix := mustDefaultIndex(t)

	thumbs := ix.Variants(ThumbsUpSign)
	if len(thumbs) != 6 {
		t.Fatalf("expected bare plus five tones, got %d", len(thumbs))
	}
	if thumbs[0].HasTones() || thumbs[1].Tones != Single(SkinToneLight) || thumbs[5].Tones != Single(SkinToneDark) {
		t.Fatalf("unexpected variant order %+v", thumbs)
	}
	if !ix.HasSkinToneOptions(ThumbsUpSign) || ix.HasSkinToneOptions("grinningFace") {
		t.Fatalf("unexpected skin tone options")
	}
	if got := len(ix.Variants("handshake")); got != 26 {
		t.Fatalf("expected bare plus 25 pairs for handshake, got %d", got)
	}
	if ix.Variants("noSuchEmoji") != nil {
		t.Fatalf("expected nil for unknown id")
	}
	if _, ok := ix.Variant(ThumbsUpSign, Pair(SkinToneLight, SkinToneDark)); ok {
		t.Fatalf("expected pair tones to be rejected for a single person emoji")
	}
}

func TestIndex_CompareVariants(t *testing.T) {
	ix := mustDefaultIndex(t)

	up, _ := ix.Variant(ThumbsUpSign, ToneSequence{})
	upDark, _ := ix.Variant(ThumbsUpSign, Single(SkinToneDark))
	upLight, _ := ix.Variant(ThumbsUpSign, Single(SkinToneLight))
	grin, _ := ix.Variant("grinningFace", ToneSequence{})
	unknown := Variant{Base: "aaa", Rendered: "?"}

	got := []Variant{unknown, upDark, up, upLight, grin}
	slices.SortStableFunc(got, ix.CompareVariants)

	expected := []Variant{grin, up, upLight, upDark, unknown}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v got %v", expected, got)
	}

	sorted := ix.Sorted([]ID{ThumbsDownSign, "grinningFace", ThumbsUpSign})
	if !reflect.DeepEqual(sorted, []ID{"grinningFace", ThumbsUpSign, ThumbsDownSign}) {
		t.Fatalf("unexpected id order %v", sorted)
	}
}
