package services

import (
	"context"
	"testing"
	"time"

	"github.com/hanko-field/emoji/internal/emoji"
)

func buildSearchFixture(t *testing.T) (*SearchIndex, *emoji.Index) {
	t.Helper()
	ix := mustIndex(t)
	keywords := map[emoji.Variant][]string{
		variant(t, ix, grinning):    {"grinning face", "smile"},
		variant(t, ix, thumbsUp):    {"Thumbs Up", "like", "approve"},
		variant(t, ix, thumbsDown):  {"thumbs down", "dislike"},
		variant(t, ix, hotBeverage): {"coffee", "hot beverage", "tea"},
	}
	return newSearchIndex("en", emoji.V(18, 4), "snap", time.Unix(0, 0), keywords, ix.CompareVariants), ix
}

func TestSearchIndex_SearchRanking(t *testing.T) {
	idx, ix := buildSearchFixture(t)

	results := idx.Search("  LIKE ", 0)
	if len(results) != 2 {
		t.Fatalf("expected two matches, got %+v", results)
	}
	// "like" is the second keyword of thumbs up and a substring of the
	// second keyword of thumbs down; the prefix match ranks first.
	if results[0].Variant != variant(t, ix, thumbsUp) || !results[0].Prefix || results[0].Keyword != "like" {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].Variant != variant(t, ix, thumbsDown) || results[1].Prefix {
		t.Fatalf("unexpected second result %+v", results[1])
	}

	thumbs := idx.Search("thumbs", 0)
	if len(thumbs) != 2 || thumbs[0].Variant.Base != emoji.ThumbsUpSign || thumbs[1].Variant.Base != emoji.ThumbsDownSign {
		t.Fatalf("expected catalog order for equal rank, got %+v", thumbs)
	}

	// Thumbs up matches "e" only in its second keyword and ranks after
	// both first-keyword matches despite its earlier catalog position.
	got := idx.Search("e", 2)
	if len(got) != 2 || got[0].Variant != variant(t, ix, grinning) || got[1].Variant != variant(t, ix, hotBeverage) {
		t.Fatalf("expected earliest keyword position to win, got %+v", got)
	}
	if got := idx.Search("   ", 10); got != nil {
		t.Fatalf("expected blank query to return nothing, got %+v", got)
	}
	if got := idx.Search("zebra", 10); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestSearchIndex_Accessors(t *testing.T) {
	idx, ix := buildSearchFixture(t)

	if idx.Language() != "en" || idx.Platform() != emoji.V(18, 4) || idx.SnapshotID() != "snap" {
		t.Fatalf("unexpected metadata %s %s %s", idx.Language(), idx.Platform(), idx.SnapshotID())
	}
	if idx.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", idx.Len())
	}
	if _, ok := idx.Keywords(variant(t, ix, "\U0001F44D\U0001F3FF")); ok {
		t.Fatalf("expected toned variant to be absent")
	}
	words, _ := idx.Keywords(variant(t, ix, thumbsUp))
	words[0] = "changed"
	again, _ := idx.Keywords(variant(t, ix, thumbsUp))
	if again[0] != "Thumbs Up" {
		t.Fatalf("expected Keywords to return a copy")
	}
}

func TestSearchIndex_ConcurrentSearch(t *testing.T) {
	idx, _ := buildSearchFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if len(idx.Search("thumbs", 0)) != 2 {
					t.Errorf("unexpected result count")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("concurrent searches did not finish")
		}
	}
}
