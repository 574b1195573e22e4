package textutil

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKeywords trims each keyword, collapses inner whitespace, applies NFC
// and removes empty and duplicate entries while keeping first-seen order.
func NormalizeKeywords(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		cleaned := norm.NFC.String(strings.Join(strings.Fields(value), " "))
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		result = append(result, cleaned)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// NormalizeKeywordMap trims keys and normalises keyword lists. Keys that trim
// to the same value are merged in sorted raw-key order and deduped. Entries
// with an empty key or no usable keyword are dropped.
func NormalizeKeywordMap(values map[string][]string) map[string][]string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	merged := make(map[string][]string, len(values))
	for _, key := range keys {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		merged[trimmedKey] = append(merged[trimmedKey], values[key]...)
	}

	result := make(map[string][]string, len(merged))
	for key, keywords := range merged {
		if normalized := NormalizeKeywords(keywords); len(normalized) > 0 {
			result[key] = normalized
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// Fold returns the case-folded form of value for case-insensitive matching.
// Casers keep state, so each call gets its own.
func Fold(value string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(value)))
}
