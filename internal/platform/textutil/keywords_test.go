package textutil

import (
	"reflect"
	"testing"
)

func TestNormalizeKeywords(t *testing.T) {
	t.Run("trims collapses and dedupes", func(t *testing.T) {
		input := []string{" thumbs   up ", "like", "", "  ", "like", "thumbs up"}
		expected := []string{"thumbs up", "like"}

		actual := NormalizeKeywords(input)
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("expected %#v got %#v", expected, actual)
		}
	})

	t.Run("composes decomposed accents", func(t *testing.T) {
		actual := NormalizeKeywords([]string{"cafe\u0301"})
		if len(actual) != 1 || actual[0] != "caf\u00e9" {
			t.Fatalf("expected NFC keyword, got %#v", actual)
		}
	})

	t.Run("returns nil for nil or empty input", func(t *testing.T) {
		if NormalizeKeywords(nil) != nil {
			t.Fatalf("expected nil for nil input")
		}
		if NormalizeKeywords([]string{" ", ""}) != nil {
			t.Fatalf("expected nil when nothing survives")
		}
	})
}

func TestNormalizeKeywordMap(t *testing.T) {
	input := map[string][]string{
		" \U0001F44D ": {" like "},
		"\U0001F44E":   {" "},
		" ":            {"ignored"},
		"\U0001F600":   {"grin", "smile"},
	}
	expected := map[string][]string{
		"\U0001F44D": {"like"},
		"\U0001F600": {"grin", "smile"},
	}

	actual := NormalizeKeywordMap(input)
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %#v got %#v", expected, actual)
	}
	if NormalizeKeywordMap(map[string][]string{}) != nil {
		t.Fatalf("expected nil for empty map")
	}
}

func TestNormalizeKeywordMap_MergesWhitespaceVariantsStably(t *testing.T) {
	input := map[string][]string{
		"\U0001F44D":   {"thumbs", "shared"},
		" \U0001F44D":  {"like"},
		"\U0001F44D ":  {"approve", "shared"},
		"\t\U0001F44D": {"yes"},
	}
	expected := map[string][]string{
		"\U0001F44D": {"yes", "like", "thumbs", "shared", "approve"},
	}

	for i := 0; i < 100; i++ {
		actual := NormalizeKeywordMap(input)
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("run %d: expected %#v got %#v", i, expected, actual)
		}
	}
}

func TestFold(t *testing.T) {
	if Fold(" Daumen HOCH ") != "daumen hoch" {
		t.Fatalf("unexpected fold %q", Fold(" Daumen HOCH "))
	}
	if Fold("Stra\u00dfe") != Fold("STRASSE") {
		t.Fatalf("expected full case folding")
	}
}
