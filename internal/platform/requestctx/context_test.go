package requestctx

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerDefaultsToNoop(t *testing.T) {
	if Logger(context.Background()) != NoopLogger() {
		t.Fatalf("expected noop logger for empty context")
	}

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	if Logger(ctx) != logger {
		t.Fatalf("expected stored logger")
	}
	if Logger(WithLogger(ctx, nil)) != NoopLogger() {
		t.Fatalf("expected nil logger to be replaced by noop")
	}
}

func TestTraceAndLanguage(t *testing.T) {
	ctx := context.Background()
	if TraceID(ctx) != "" || Language(ctx) != "" {
		t.Fatalf("expected empty metadata")
	}

	ctx = WithTrace(ctx, TraceInfo{TraceID: "abc", SpanID: "def", Sampled: true})
	ctx = WithLanguage(ctx, "de")

	if TraceID(ctx) != "abc" {
		t.Fatalf("expected trace id abc, got %q", TraceID(ctx))
	}
	if Language(ctx) != "de" {
		t.Fatalf("expected language de, got %q", Language(ctx))
	}
}
