package emoji

import "unicode/utf8"

const (
	thumbsUpRune   rune = 0x1F44D
	thumbsDownRune rune = 0x1F44E
)

// LegacyReaction is the two-valued reaction understood by older clients.
type LegacyReaction uint8

const (
	// LegacyPositive is the legacy "acknowledge" reaction.
	LegacyPositive LegacyReaction = iota + 1
	// LegacyNegative is the legacy "decline" reaction.
	LegacyNegative
)

func (r LegacyReaction) String() string {
	switch r {
	case LegacyPositive:
		return "positive"
	case LegacyNegative:
		return "negative"
	}
	return "unknown"
}

// Classify maps a reaction to the legacy protocol by its first code point
// only, so toned thumbs map like the bare ones.
func Classify(rendered string) (LegacyReaction, bool) {
	first, _ := utf8.DecodeRuneInString(rendered)
	switch first {
	case thumbsUpRune:
		return LegacyPositive, true
	case thumbsDownRune:
		return LegacyNegative, true
	}
	return 0, false
}

// HasNonLegacyReactions reports whether any reaction cannot be expressed in
// the legacy protocol.
func HasNonLegacyReactions(reactions []string) bool {
	for _, reaction := range reactions {
		if _, ok := Classify(reaction); !ok {
			return true
		}
	}
	return false
}
