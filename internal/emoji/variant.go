package emoji

import (
	"errors"
	"fmt"
	"strings"
)

const maxTonesPerSequence = 2

var errInvalidToneSequence = errors.New("emoji: invalid tone sequence")

// ErrInvalidToneSequence is returned when a tone sequence cannot be built or parsed.
var ErrInvalidToneSequence = errInvalidToneSequence

// ToneSequence is an ordered list of one or two skin tones. Multi-person
// glyphs take one tone per person, left to right. The zero value means
// "no tones" and is comparable, so sequences can be used as map keys.
type ToneSequence struct {
	n     uint8
	tones [maxTonesPerSequence]SkinTone
}

// Single returns a one-tone sequence.
func Single(tone SkinTone) ToneSequence {
	return ToneSequence{n: 1, tones: [maxTonesPerSequence]SkinTone{tone}}
}

// Pair returns a two-tone sequence; first is the left person's tone.
func Pair(first, second SkinTone) ToneSequence {
	return ToneSequence{n: 2, tones: [maxTonesPerSequence]SkinTone{first, second}}
}

// NewToneSequence builds a sequence from 1 or 2 valid tones.
func NewToneSequence(tones ...SkinTone) (ToneSequence, error) {
	if len(tones) == 0 || len(tones) > maxTonesPerSequence {
		return ToneSequence{}, fmt.Errorf("%w: expected 1 or 2 tones, got %d", errInvalidToneSequence, len(tones))
	}
	var seq ToneSequence
	for i, tone := range tones {
		if !tone.Valid() {
			return ToneSequence{}, fmt.Errorf("%w: tone %d is invalid", errInvalidToneSequence, i)
		}
		seq.tones[i] = tone
	}
	seq.n = uint8(len(tones))
	return seq, nil
}

// ParseToneSequence parses a comma separated list such as "light,dark".
func ParseToneSequence(value string) (ToneSequence, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ToneSequence{}, fmt.Errorf("%w: empty", errInvalidToneSequence)
	}
	parts := strings.Split(trimmed, ",")
	tones := make([]SkinTone, 0, len(parts))
	for _, part := range parts {
		tone, err := ParseSkinTone(part)
		if err != nil {
			return ToneSequence{}, errors.Join(errInvalidToneSequence, err)
		}
		tones = append(tones, tone)
	}
	return NewToneSequence(tones...)
}

// Len returns the number of tones (0, 1 or 2).
func (s ToneSequence) Len() int { return int(s.n) }

// IsZero reports whether the sequence carries no tones.
func (s ToneSequence) IsZero() bool { return s.n == 0 }

// At returns the tone at position i.
func (s ToneSequence) At(i int) SkinTone {
	if i < 0 || i >= int(s.n) {
		return 0
	}
	return s.tones[i]
}

// Tones returns a copy of the tones in order.
func (s ToneSequence) Tones() []SkinTone {
	if s.n == 0 {
		return nil
	}
	out := make([]SkinTone, s.n)
	copy(out, s.tones[:s.n])
	return out
}

// Encode returns the raw encoding: one modifier rune per tone.
func (s ToneSequence) Encode() string {
	if s.n == 0 {
		return ""
	}
	var b strings.Builder
	for _, tone := range s.tones[:s.n] {
		b.WriteRune(tone.Modifier())
	}
	return b.String()
}

// String renders the sequence as comma separated tone names.
func (s ToneSequence) String() string {
	if s.n == 0 {
		return ""
	}
	names := make([]string, 0, s.n)
	for _, tone := range s.tones[:s.n] {
		names = append(names, tone.String())
	}
	return strings.Join(names, ",")
}

// compare orders sequences by length, then tone rank position by position.
func (s ToneSequence) compare(other ToneSequence) int {
	if s.n != other.n {
		if s.n < other.n {
			return -1
		}
		return 1
	}
	for i := 0; i < int(s.n); i++ {
		a, b := s.tones[i].Rank(), other.tones[i].Rank()
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Variant pairs a base identifier with an optional tone sequence and the
// rendered sequence derived from them.
type Variant struct {
	Base     ID
	Tones    ToneSequence
	Rendered string
}

// Key identifies the variant in maps and sets: the rendered sequence followed
// by the raw tone encoding.
func (v Variant) Key() string {
	return v.Rendered + v.Tones.Encode()
}

// HasTones reports whether a skin tone is applied.
func (v Variant) HasTones() bool {
	return !v.Tones.IsZero()
}

func (v Variant) String() string {
	return v.Rendered
}
