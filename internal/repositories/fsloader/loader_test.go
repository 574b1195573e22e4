package fsloader

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoader_LoadTranslations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	loader, err := New(fstest.MapFS{
		"en.json":  {Data: []byte("{\"\U0001F44D\": [\"thumbs up\", \" yes \"], \"\U0001F44E\": []}")},
		"de.json":  {Data: []byte(`{"broken"`)},
		"it.json":  {Data: []byte(`{}`)},
		"notes.md": {Data: []byte("ignored")},
	}, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, ok := loader.LoadTranslations(context.Background(), "en")
	if !ok {
		t.Fatalf("expected en to load")
	}
	expected := map[string][]string{"\U0001F44D": {"thumbs up", "yes"}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if _, ok := loader.LoadTranslations(context.Background(), "de"); ok {
		t.Fatalf("expected malformed de to fail")
	}
	if logs.FilterMessage("translation decode failed").Len() != 1 {
		t.Fatalf("expected decode failure to be logged")
	}

	if got, ok := loader.LoadTranslations(context.Background(), "it"); !ok || len(got) != 0 {
		t.Fatalf("expected empty it resource to load without keywords, got %v ok=%v", got, ok)
	}

	if _, ok := loader.LoadTranslations(context.Background(), "fr"); ok {
		t.Fatalf("expected missing fr to fail")
	}
	if logs.FilterMessage("translation resource missing").Len() != 1 {
		t.Fatalf("expected missing resource to be logged")
	}

	if _, ok := loader.LoadTranslations(context.Background(), "../en"); ok {
		t.Fatalf("expected path-like code to be rejected")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := loader.LoadTranslations(ctx, "en"); ok {
		t.Fatalf("expected cancelled context to fail")
	}
}

func TestLoader_Languages(t *testing.T) {
	loader, err := New(fstest.MapFS{
		"pt.json":      {Data: []byte(`{}`)},
		"en.json":      {Data: []byte(`{}`)},
		"README.json":  {Data: []byte(`{}`)},
		"sub/de.json":  {Data: []byte(`{}`)},
		"ja.json.bak":  {Data: []byte(`{}`)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	codes, err := loader.Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"en", "pt"}) {
		t.Fatalf("unexpected languages %v", codes)
	}
}

func TestNewEmbedded_CoversSupportedLanguages(t *testing.T) {
	loader, err := NewEmbedded()
	if err != nil {
		t.Fatalf("NewEmbedded: %v", err)
	}
	codes, err := loader.Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	expected := []string{"de", "en", "es", "fr", "it", "ja", "nl", "pt"}
	if !reflect.DeepEqual(codes, expected) {
		t.Fatalf("expected %v, got %v", expected, codes)
	}
	for _, code := range expected {
		if _, ok := loader.LoadTranslations(context.Background(), code); !ok {
			t.Fatalf("expected embedded %s to load", code)
		}
	}
	if err := loader.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestNewDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte("{\"\u2615\": [\"coffee\"]}"), 0o600); err != nil {
		t.Fatalf("write resource: %v", err)
	}
	loader, err := NewDir(dir)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	got, ok := loader.LoadTranslations(context.Background(), "en")
	if !ok || !reflect.DeepEqual(got["\u2615"], []string{"coffee"}) {
		t.Fatalf("unexpected translations %v ok=%v", got, ok)
	}

	if _, err := NewDir(filepath.Join(dir, "en.json")); err == nil {
		t.Fatalf("expected error for file path")
	}
	if _, err := NewDir(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
