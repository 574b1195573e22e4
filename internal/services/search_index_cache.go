package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/hanko-field/emoji/internal/emoji"
)

type indexBuilder interface {
	BuildFor(ctx context.Context, lang string, platform emoji.Version) (*SearchIndex, bool)
}

// SearchIndexCacheDeps wires the cache's collaborators.
type SearchIndexCacheDeps struct {
	Builder indexBuilder
	TTL     time.Duration
	Clock   func() time.Time
	Meter   metric.Meter
}

type cacheKey struct {
	language string
	platform emoji.Version
}

type cachedIndex struct {
	index     *SearchIndex
	expiresAt time.Time
}

// SearchIndexCache keeps built indexes per (language, platform tier) for a TTL
// and collapses concurrent builds of the same pair into one. Platforms are
// reduced to their emoji.GateTier, so the key space is bounded by the
// supported languages times the availability tiers. Expired entries are
// evicted on lookup and on store. Failed builds are not cached. A zero TTL disables caching but still deduplicates in-flight builds.
type SearchIndexCache struct {
	builder indexBuilder
	ttl     time.Duration
	clock   func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[cacheKey]cachedIndex

	lookups        metric.Int64Counter
	lookupsEnabled bool
}

var _ SearchIndexProvider = (*SearchIndexCache)(nil)

// NewSearchIndexCache constructs a cache in front of builder.
func NewSearchIndexCache(deps SearchIndexCacheDeps) (*SearchIndexCache, error) {
	if deps.Builder == nil {
		return nil, errors.New("search index cache: builder is required")
	}
	if deps.TTL < 0 {
		return nil, errors.New("search index cache: ttl must not be negative")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	meter := deps.Meter
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(instrumentationName)
	}
	lookups, lookupsErr := meter.Int64Counter(
		"emoji.search_index.cache_lookups",
		metric.WithDescription("Count of search index cache lookups by outcome"),
	)
	return &SearchIndexCache{
		builder:        deps.Builder,
		ttl:            deps.TTL,
		clock:          clock,
		entries:        make(map[cacheKey]cachedIndex),
		lookups:        lookups,
		lookupsEnabled: lookupsErr == nil,
	}, nil
}

// SearchIndex returns a cached index or builds one. Callers waiting on a
// shared build stop waiting when their own context ends; the build itself
// keeps running for the others.
func (c *SearchIndexCache) SearchIndex(ctx context.Context, lang string, platform emoji.Version) (*SearchIndex, bool) {
	platform = emoji.GateTier(platform)
	key := cacheKey{language: NormalizeLanguage(lang), platform: platform}

	if idx, ok := c.lookup(key); ok {
		c.recordLookup(ctx, key, "hit")
		return idx, true
	}
	c.recordLookup(ctx, key, "miss")

	ch := c.group.DoChan(key.language+"@"+platform.String(), func() (any, error) {
		if idx, ok := c.lookup(key); ok {
			return idx, nil
		}
		idx, ok := c.builder.BuildFor(context.WithoutCancel(ctx), key.language, platform)
		if !ok {
			return nil, errBuildFailed
		}
		c.store(key, idx)
		return idx, nil
	})

	select {
	case <-ctx.Done():
		return nil, false
	case res := <-ch:
		if res.Err != nil {
			return nil, false
		}
		return res.Val.(*SearchIndex), true
	}
}

var errBuildFailed = errors.New("search index cache: build failed")

// Invalidate drops every cached index.
func (c *SearchIndexCache) Invalidate() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}

// Len returns the number of cached, unexpired indexes.
func (c *SearchIndexCache) Len() int {
	now := c.clock()
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, entry := range c.entries {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n
}

func (c *SearchIndexCache) lookup(key cacheKey) (*SearchIndex, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now := c.clock(); !now.Before(entry.expiresAt) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && !now.Before(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.index, true
}

func (c *SearchIndexCache) store(key cacheKey, idx *SearchIndex) {
	if c.ttl == 0 {
		return
	}
	now := c.clock()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cachedIndex{index: idx, expiresAt: now.Add(c.ttl)}
}

func (c *SearchIndexCache) recordLookup(ctx context.Context, key cacheKey, outcome string) {
	if !c.lookupsEnabled {
		return
	}
	c.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("language", key.language),
		attribute.String("outcome", outcome),
	))
}
