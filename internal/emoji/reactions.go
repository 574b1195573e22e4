package emoji

import (
	"cmp"
	"slices"
)

// ReplacementCharacter is shown in place of reactions that cannot be rendered.
const ReplacementCharacter = "\uFFFD"

// TonePreferences stores the skin tone a user picked per base emoji.
type TonePreferences map[ID]SkinTone

var (
	baseReactionIDs    = []ID{ThumbsUpSign, ThumbsDownSign}
	defaultReactionIDs = []ID{HeavyBlackHeart, FaceWithTearsOfJoy, CryingFace, PersonWithFoldedHands}
)

// PreferredVariant applies the preferred tone for id when it supports tones.
// Multi-person glyphs get the preferred tone for every person. Without a
// usable preference the bare variant is returned.
func PreferredVariant(ix *Index, id ID, prefs TonePreferences) (Variant, bool) {
	bare, ok := ix.Variant(id, ToneSequence{})
	if !ok {
		return Variant{}, false
	}
	tone, ok := prefs[id]
	if !ok || !tone.Valid() {
		return bare, true
	}
	entry, _ := ix.catalog.Entry(id)
	var tones ToneSequence
	switch entry.Tones.Arity() {
	case 1:
		tones = Single(tone)
	case 2:
		tones = Pair(tone, tone)
	default:
		return bare, true
	}
	if v, ok := ix.Variant(id, tones); ok {
		return v, true
	}
	return bare, true
}

// BaseReactions returns thumbs up and thumbs down with preferred tones applied.
// These two are always offered because they map to the legacy protocol.
func BaseReactions(ix *Index, prefs TonePreferences) []Variant {
	return preferredVariants(ix, baseReactionIDs, prefs)
}

// DefaultReactions returns the quick reactions offered next to the base ones.
func DefaultReactions(ix *Index, prefs TonePreferences) []Variant {
	return preferredVariants(ix, defaultReactionIDs, prefs)
}

func preferredVariants(ix *Index, ids []ID, prefs TonePreferences) []Variant {
	out := make([]Variant, 0, len(ids))
	for _, id := range ids {
		if v, ok := PreferredVariant(ix, id, prefs); ok {
			out = append(out, v)
		}
	}
	return out
}

// DisplayValue returns raw when it resolves to a variant the gate allows, and
// the replacement character otherwise.
func DisplayValue(ix *Index, gate Gate, raw string) string {
	v, ok := ix.Resolve(raw)
	if !ok || !gate.AllowsID(ix.catalog, v.Base) {
		return ReplacementCharacter
	}
	return v.Rendered
}

// OrderRecent turns a map of recently used sequences to their usage position
// into variants ordered by that position. Ties are broken by the raw string;
// sequences that no longer resolve are dropped.
func OrderRecent(ix *Index, recent map[string]int) []Variant {
	raws := make([]string, 0, len(recent))
	for raw := range recent {
		raws = append(raws, raw)
	}
	slices.SortFunc(raws, func(a, b string) int {
		if c := cmp.Compare(recent[a], recent[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	out := make([]Variant, 0, len(raws))
	for _, raw := range raws {
		if v, ok := ix.Resolve(raw); ok {
			out = append(out, v)
		}
	}
	return out
}
