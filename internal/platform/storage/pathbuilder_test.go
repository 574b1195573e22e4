package storage

import (
	"context"
	"testing"
)

func TestTranslationObjectPath(t *testing.T) {
	cases := map[string]struct {
		prefix string
		code   string
		want   string
	}{
		"default prefix":   {prefix: "translations", code: "de", want: "translations/de.json"},
		"nested prefix":    {prefix: "/keywords/v2/", code: "ja", want: "keywords/v2/ja.json"},
		"empty prefix":     {prefix: "", code: "en", want: "en.json"},
		"whitespace trims": {prefix: " translations ", code: " fr ", want: "translations/fr.json"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path, err := TranslationObjectPath(tc.prefix, tc.code)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if path != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, path)
			}
		})
	}
}

func TestTranslationObjectPathRejectsInvalidSegment(t *testing.T) {
	for _, tc := range []struct{ prefix, code string }{
		{"translations", "../en"},
		{"translations", ""},
		{"a/../b", "en"},
		{"translations", `de\x`},
	} {
		if _, err := TranslationObjectPath(tc.prefix, tc.code); err == nil {
			t.Fatalf("expected error for prefix %q code %q", tc.prefix, tc.code)
		}
	}
}

func TestNewObjectReaderValidation(t *testing.T) {
	if _, err := NewObjectReader(nil, "bucket"); err == nil {
		t.Fatalf("expected error for nil client")
	}
	var reader *ObjectReader
	if _, err := reader.ReadObject(context.Background(), "en.json"); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
