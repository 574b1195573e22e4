package firestore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hanko-field/emoji/internal/platform/config"
)

func TestWrapError(t *testing.T) {
	notFound := WrapError("emojiTranslations.get", status.Error(codes.NotFound, "missing"))
	if !IsNotFound(notFound) {
		t.Fatalf("expected not found classification, got %v", notFound)
	}
	if notFound.Error() != "emojiTranslations.get: rpc error: code = NotFound desc = missing" {
		t.Fatalf("unexpected message %q", notFound.Error())
	}

	var fsErr *Error
	unavailable := WrapError("emojiTranslations.get", status.Error(codes.Unavailable, "down"))
	if !errors.As(unavailable, &fsErr) || !fsErr.IsUnavailable() || fsErr.IsNotFound() {
		t.Fatalf("expected unavailable classification, got %v", unavailable)
	}

	if err := WrapError("op", status.Error(codes.DeadlineExceeded, "slow")); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded passthrough, got %v", err)
	}
	if err := WrapError("op", fmt.Errorf("wrapped: %w", context.Canceled)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation passthrough, got %v", err)
	}
	if WrapError("op", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatalf("expected plain errors not to be classified")
	}
}

func TestProviderClosed(t *testing.T) {
	provider := NewProvider(config.FirestoreConfig{ProjectID: "emoji-test"})
	if err := provider.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := provider.Client(context.Background()); !errors.Is(err, ErrProviderClosed) {
		t.Fatalf("expected ErrProviderClosed, got %v", err)
	}
}
