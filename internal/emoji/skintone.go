package emoji

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownSkinTone = errors.New("emoji: unknown skin tone")

// ErrUnknownSkinTone is returned when a skin tone name cannot be parsed.
var ErrUnknownSkinTone = errUnknownSkinTone

// SkinTone is one of the five Fitzpatrick based skin tone modifiers.
// The zero value is not a valid tone.
type SkinTone uint8

const (
	// SkinToneLight is the light skin tone (Type I-II).
	SkinToneLight SkinTone = iota + 1
	// SkinToneMediumLight is the medium-light skin tone (Type III).
	SkinToneMediumLight
	// SkinToneMedium is the medium skin tone (Type IV).
	SkinToneMedium
	// SkinToneMediumDark is the medium-dark skin tone (Type V).
	SkinToneMediumDark
	// SkinToneDark is the dark skin tone (Type VI).
	SkinToneDark
)

type skinToneInfo struct {
	name     string
	rank     int
	modifier rune
}

// skinTones is indexed by SkinTone; index 0 is the invalid zero value.
var skinTones = [...]skinToneInfo{
	SkinToneLight:       {name: "light", rank: 0, modifier: 0x1F3FB},
	SkinToneMediumLight: {name: "medium-light", rank: 1, modifier: 0x1F3FC},
	SkinToneMedium:      {name: "medium", rank: 2, modifier: 0x1F3FD},
	SkinToneMediumDark:  {name: "medium-dark", rank: 3, modifier: 0x1F3FE},
	SkinToneDark:        {name: "dark", rank: 4, modifier: 0x1F3FF},
}

// SkinTones returns all tones ordered by rank.
func SkinTones() []SkinTone {
	return []SkinTone{SkinToneLight, SkinToneMediumLight, SkinToneMedium, SkinToneMediumDark, SkinToneDark}
}

// Valid reports whether t is one of the five defined tones.
func (t SkinTone) Valid() bool {
	return t >= SkinToneLight && int(t) < len(skinTones)
}

// Rank orders tones from lightest (0) to darkest (4). Invalid tones rank -1.
func (t SkinTone) Rank() int {
	if !t.Valid() {
		return -1
	}
	return skinTones[t].rank
}

// Modifier returns the U+1F3FB..U+1F3FF modifier rune, or 0 for invalid tones.
func (t SkinTone) Modifier() rune {
	if !t.Valid() {
		return 0
	}
	return skinTones[t].modifier
}

func (t SkinTone) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return skinTones[t].name
}

// ParseSkinTone accepts the names returned by String, case-insensitively.
func ParseSkinTone(value string) (SkinTone, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	name = strings.ReplaceAll(name, "_", "-")
	for _, tone := range SkinTones() {
		if skinTones[tone].name == name {
			return tone, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownSkinTone, value)
}

// SkinToneFromModifier maps a modifier rune back to its tone.
func SkinToneFromModifier(r rune) (SkinTone, bool) {
	for _, tone := range SkinTones() {
		if skinTones[tone].modifier == r {
			return tone, true
		}
	}
	return 0, false
}
