package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hanko-field/emoji/internal/platform/textutil"
)

var (
	errInvalidLanguageCode = errors.New("translations: invalid language code")
	errMissingKeywordMap   = errors.New("translations: resource has no keyword map")
)

// ErrInvalidLanguageCode is returned when a code is not a bare lowercase language subtag.
var ErrInvalidLanguageCode = errInvalidLanguageCode

// ErrMissingKeywordMap is returned when a resource is null or lacks its
// keyword map entirely. An empty map is a valid resource.
var ErrMissingKeywordMap = errMissingKeywordMap

// ValidateLanguageCode accepts two or three lowercase ASCII letters. Codes are
// used as file, object and document names, so anything else is rejected.
func ValidateLanguageCode(code string) error {
	if len(code) < 2 || len(code) > 3 {
		return fmt.Errorf("%w: %q", errInvalidLanguageCode, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'a' || code[i] > 'z' {
			return fmt.Errorf("%w: %q", errInvalidLanguageCode, code)
		}
	}
	return nil
}

// DecodeTranslations parses a {"<rendered>": ["keyword", ...]} document and
// normalises its keyword lists.
func DecodeTranslations(data []byte) (map[string][]string, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("translations: decode: %w", err)
	}
	return NormalizeTranslations(raw)
}

// NormalizeTranslations trims keys and keywords and drops empty entries. A
// resource whose entries are all dropped yields an empty, non-nil map.
func NormalizeTranslations(raw map[string][]string) (map[string][]string, error) {
	if raw == nil {
		return nil, errMissingKeywordMap
	}
	normalized := textutil.NormalizeKeywordMap(raw)
	if normalized == nil {
		normalized = map[string][]string{}
	}
	return normalized, nil
}

// TranslationObjectName returns the file name holding a language resource.
func TranslationObjectName(code string) string {
	return strings.ToLower(code) + ".json"
}
