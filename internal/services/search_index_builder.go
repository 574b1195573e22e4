package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/hanko-field/emoji/internal/emoji"
	"github.com/hanko-field/emoji/internal/repositories"
)

const instrumentationName = "github.com/hanko-field/emoji/internal/services"

const (
	buildResultOK      = "ok"
	buildResultFailed  = "load_failed"
	buildResultPartial = "fallback_failed"
)

// SearchIndexBuilderDeps wires the builder's collaborators.
type SearchIndexBuilderDeps struct {
	Index    *emoji.Index
	Loader   repositories.TranslationLoader
	Platform emoji.Version
	Clock    func() time.Time
	NewID    func() string
	Logger   func(ctx context.Context, event string, fields map[string]any)
	Meter    metric.Meter
	Tracer   trace.Tracer
}

// SearchIndexBuilder turns keyword resources into SearchIndex values.
type SearchIndexBuilder struct {
	index    *emoji.Index
	loader   repositories.TranslationLoader
	platform emoji.Version
	clock    func() time.Time
	newID    func() string
	logger   func(context.Context, string, map[string]any)
	tracer   trace.Tracer

	builds         metric.Int64Counter
	buildsEnabled  bool
	latency        metric.Float64Histogram
	latencyEnabled bool
}

var _ SearchIndexProvider = (*SearchIndexBuilder)(nil)

// NewSearchIndexBuilder validates deps and registers the build metrics.
func NewSearchIndexBuilder(deps SearchIndexBuilderDeps) (*SearchIndexBuilder, error) {
	if deps.Index == nil {
		return nil, errors.New("search index builder: emoji index is required")
	}
	if deps.Loader == nil {
		return nil, errors.New("search index builder: translation loader is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	newID := deps.NewID
	if newID == nil {
		newID = func() string { return ulid.Make().String() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	meter := deps.Meter
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(instrumentationName)
	}

	builder := &SearchIndexBuilder{
		index:    deps.Index,
		loader:   deps.Loader,
		platform: deps.Platform,
		clock: func() time.Time {
			return clock().UTC()
		},
		newID:  newID,
		logger: logger,
		tracer: tracer,
	}

	builds, buildsErr := meter.Int64Counter(
		"emoji.search_index.builds",
		metric.WithDescription("Count of search index builds by language and result"),
	)
	if buildsErr != nil {
		logger(context.Background(), "search_index_metric_error", map[string]any{"metric": "builds", "error": buildsErr.Error()})
	}
	latency, latencyErr := meter.Float64Histogram(
		"emoji.search_index.build.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for search index builds"),
	)
	if latencyErr != nil {
		logger(context.Background(), "search_index_metric_error", map[string]any{"metric": "latency", "error": latencyErr.Error()})
	}
	builder.builds, builder.buildsEnabled = builds, buildsErr == nil
	builder.latency, builder.latencyEnabled = latency, latencyErr == nil

	return builder, nil
}

// Platform returns the platform release Build filters against.
func (b *SearchIndexBuilder) Platform() emoji.Version { return b.platform }

// Build builds the index for lang on the builder's default platform.
func (b *SearchIndexBuilder) Build(ctx context.Context, lang string) (*SearchIndex, bool) {
	return b.BuildFor(ctx, lang, b.platform)
}

// SearchIndex implements SearchIndexProvider without caching.
func (b *SearchIndexBuilder) SearchIndex(ctx context.Context, lang string, platform emoji.Version) (*SearchIndex, bool) {
	return b.BuildFor(ctx, lang, platform)
}

// BuildFor normalises lang, loads its keywords and keeps the entries that
// resolve to a variant renderable on platform. For languages other than the
// fallback, fallback keywords are appended after the native ones and
// fallback-only entries are added. It returns false only when the primary
// language could not be loaded.
func (b *SearchIndexBuilder) BuildFor(ctx context.Context, lang string, platform emoji.Version) (*SearchIndex, bool) {
	code := NormalizeLanguage(lang)
	start := b.clock()

	ctx, span := b.tracer.Start(ctx, "search_index.build", trace.WithAttributes(
		attribute.String("emoji.language", code),
		attribute.String("emoji.platform", platform.String()),
	))
	defer span.End()

	gate := emoji.NewGate(platform)
	primary, ok := b.loader.LoadTranslations(ctx, code)
	if !ok {
		span.SetStatus(codes.Error, "primary language unavailable")
		b.logger(ctx, "search_index_build_failed", map[string]any{
			"language":  code,
			"requested": lang,
		})
		b.record(ctx, code, buildResultFailed, start)
		return nil, false
	}

	keywords := b.resolve(ctx, code, primary, gate)
	result := buildResultOK
	if code != FallbackLanguage {
		fallback, ok := b.loader.LoadTranslations(ctx, FallbackLanguage)
		if ok {
			mergeFallback(keywords, b.resolve(ctx, FallbackLanguage, fallback, gate))
		} else {
			result = buildResultPartial
			span.AddEvent("fallback language unavailable")
			b.logger(ctx, "search_index_fallback_failed", map[string]any{"language": code})
		}
	}

	idx := newSearchIndex(code, platform, b.newID(), b.clock(), keywords, b.index.CompareVariants)
	span.SetAttributes(
		attribute.Int("emoji.entries", idx.Len()),
		attribute.String("emoji.snapshot_id", idx.SnapshotID()),
	)
	b.logger(ctx, "search_index_built", map[string]any{
		"language":   code,
		"platform":   platform.String(),
		"entries":    idx.Len(),
		"snapshotId": idx.SnapshotID(),
	})
	b.record(ctx, code, result, start)
	return idx, true
}

// resolve maps raw keys to variants in sorted key order, dropping keys that
// are not emoji or not renderable. Keys resolving to the same variant have
// their keywords concatenated.
func (b *SearchIndexBuilder) resolve(ctx context.Context, code string, raw map[string][]string, gate emoji.Gate) map[emoji.Variant][]string {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	catalog := b.index.Catalog()
	out := make(map[emoji.Variant][]string, len(keys))
	var unresolved, unavailable int
	for _, key := range keys {
		words := raw[key]
		if len(words) == 0 {
			continue
		}
		v, ok := b.index.Resolve(key)
		if !ok {
			unresolved++
			continue
		}
		if !gate.AllowsID(catalog, v.Base) {
			unavailable++
			continue
		}
		out[v] = append(out[v], words...)
	}
	if unresolved > 0 || unavailable > 0 {
		b.logger(ctx, "search_index_entries_dropped", map[string]any{
			"language":    code,
			"unresolved":  unresolved,
			"unavailable": unavailable,
		})
	}
	return out
}

// mergeFallback appends fallback keywords after native ones.
func mergeFallback(native, fallback map[emoji.Variant][]string) {
	for v, words := range fallback {
		merged := make([]string, 0, len(native[v])+len(words))
		merged = append(merged, native[v]...)
		native[v] = append(merged, words...)
	}
}

func (b *SearchIndexBuilder) record(ctx context.Context, code, result string, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("language", code),
		attribute.String("result", result),
	)
	if b.buildsEnabled {
		b.builds.Add(ctx, 1, attrs)
	}
	if b.latencyEnabled {
		elapsed := b.clock().Sub(start)
		b.latency.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
	}
}
