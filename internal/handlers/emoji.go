package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hanko-field/emoji/internal/emoji"
	"github.com/hanko-field/emoji/internal/platform/httpx"
	"github.com/hanko-field/emoji/internal/platform/observability"
	"github.com/hanko-field/emoji/internal/services"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
	maxSequenceLength  = 64
)

// EmojiHandlers exposes resolution, availability and search endpoints.
type EmojiHandlers struct {
	index    *emoji.Index
	indexes  services.SearchIndexProvider
	platform emoji.Version
}

// NewEmojiHandlers constructs the handler set. platform is assumed when a
// request does not name one.
func NewEmojiHandlers(index *emoji.Index, indexes services.SearchIndexProvider, platform emoji.Version) *EmojiHandlers {
	return &EmojiHandlers{
		index:    index,
		indexes:  indexes,
		platform: platform,
	}
}

// Routes registers the endpoints beneath /emoji.
func (h *EmojiHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/resolve", h.resolve)
	r.Get("/legacy", h.legacy)
	r.Get("/display", h.display)
	r.Get("/reactions", h.reactions)
	r.Get("/search", h.search)
	r.Get("/index", h.searchIndex)
	r.Get("/{id}/variants", h.variants)
}

type variantPayload struct {
	ID         string   `json:"id"`
	Sequence   string   `json:"sequence"`
	Tones      []string `json:"tones,omitempty"`
	Introduced string   `json:"introduced,omitempty"`
}

type resolveResponse struct {
	variantPayload
	HasSkinToneOptions bool    `json:"hasSkinToneOptions"`
	Legacy             *string `json:"legacy"`
}

type variantsResponse struct {
	ID       string           `json:"id"`
	Variants []variantPayload `json:"variants"`
}

type legacyResponse struct {
	Sequence string  `json:"sequence"`
	Reaction *string `json:"reaction"`
}

type displayResponse struct {
	Sequence   string `json:"sequence"`
	Display    string `json:"display"`
	Platform   string `json:"platform"`
	Renderable bool   `json:"renderable"`
}

type reactionsResponse struct {
	Base    []variantPayload `json:"base"`
	Default []variantPayload `json:"default"`
}

type searchResultPayload struct {
	variantPayload
	Keyword string `json:"keyword"`
	Prefix  bool   `json:"prefix"`
}

type searchResponse struct {
	Query      string                `json:"query"`
	Language   string                `json:"language"`
	Platform   string                `json:"platform"`
	SnapshotID string                `json:"snapshotId"`
	Results    []searchResultPayload `json:"results"`
}

type indexEntryPayload struct {
	variantPayload
	Keywords []string `json:"keywords"`
}

type indexResponse struct {
	Language   string              `json:"language"`
	Platform   string              `json:"platform"`
	SnapshotID string              `json:"snapshotId"`
	BuiltAt    string              `json:"builtAt"`
	Entries    []indexEntryPayload `json:"entries"`
}

func (h *EmojiHandlers) resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.index == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "emoji index not available"))
		return
	}
	sequence, ok := h.sequenceParam(w, r)
	if !ok {
		return
	}

	v, found := h.index.Resolve(sequence)
	if !found {
		httpx.WriteError(ctx, w, httpx.NotFound("emoji_not_found", "sequence is not a known emoji"))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resolveResponse{
		variantPayload:     h.toPayload(v),
		HasSkinToneOptions: h.index.HasSkinToneOptions(v.Base),
		Legacy:             legacyName(v.Rendered),
	})
}

func (h *EmojiHandlers) variants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.index == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "emoji index not available"))
		return
	}
	id := emoji.ID(strings.TrimSpace(chi.URLParam(r, "id")))
	variants := h.index.Variants(id)
	if len(variants) == 0 {
		httpx.WriteError(ctx, w, httpx.NotFound("emoji_not_found", "unknown emoji identifier"))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, variantsResponse{
		ID:       string(id),
		Variants: h.toPayloads(variants),
	})
}

func (h *EmojiHandlers) legacy(w http.ResponseWriter, r *http.Request) {
	sequence, ok := h.sequenceParam(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, legacyResponse{
		Sequence: sequence,
		Reaction: legacyName(sequence),
	})
}

func (h *EmojiHandlers) display(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.index == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "emoji index not available"))
		return
	}
	sequence, ok := h.sequenceParam(w, r)
	if !ok {
		return
	}
	platform, ok := h.platformParam(w, r)
	if !ok {
		return
	}
	value := emoji.DisplayValue(h.index, emoji.NewGate(platform), sequence)
	httpx.WriteJSON(w, http.StatusOK, displayResponse{
		Sequence:   sequence,
		Display:    value,
		Platform:   platform.String(),
		Renderable: value != emoji.ReplacementCharacter,
	})
}

func (h *EmojiHandlers) reactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.index == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "emoji index not available"))
		return
	}

	var prefs emoji.TonePreferences
	if raw := strings.TrimSpace(r.URL.Query().Get("tone")); raw != "" {
		tone, err := emoji.ParseSkinTone(raw)
		if err != nil {
			httpx.WriteError(ctx, w, httpx.BadRequest("tone must be one of light, medium-light, medium, medium-dark, dark"))
			return
		}
		prefs = emoji.TonePreferences{}
		for _, entry := range h.index.Catalog().Entries() {
			if entry.Tones.SupportsTones() {
				prefs[entry.ID] = tone
			}
		}
	}

	httpx.WriteJSON(w, http.StatusOK, reactionsResponse{
		Base:    h.toPayloads(emoji.BaseReactions(h.index, prefs)),
		Default: h.toPayloads(emoji.DefaultReactions(h.index, prefs)),
	})
}

func (h *EmojiHandlers) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.indexes == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "search not available"))
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.WriteError(ctx, w, httpx.BadRequest("q is required"))
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	platform, ok := h.platformParam(w, r)
	if !ok {
		return
	}

	idx, ok := h.indexes.SearchIndex(ctx, languageFromRequest(r), platform)
	if !ok {
		writeIndexUnavailable(w, r)
		return
	}

	matches := idx.Search(query, limit)
	observability.FromContext(ctx).Debug("emoji search",
		zap.String("query", observability.SanitizeQuery(query)),
		zap.String("language", idx.Language()),
		zap.Int("results", len(matches)),
	)
	results := make([]searchResultPayload, 0, len(matches))
	for _, match := range matches {
		results = append(results, searchResultPayload{
			variantPayload: h.toPayload(match.Variant),
			Keyword:        match.Keyword,
			Prefix:         match.Prefix,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, searchResponse{
		Query:      query,
		Language:   idx.Language(),
		Platform:   platform.String(),
		SnapshotID: idx.SnapshotID(),
		Results:    results,
	})
}

func (h *EmojiHandlers) searchIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.indexes == nil {
		httpx.WriteError(ctx, w, httpx.Unavailable("service_unavailable", "search not available"))
		return
	}
	platform, ok := h.platformParam(w, r)
	if !ok {
		return
	}

	idx, ok := h.indexes.SearchIndex(ctx, languageFromRequest(r), platform)
	if !ok {
		writeIndexUnavailable(w, r)
		return
	}

	if httpx.NotModified(w, r, strconv.Quote(idx.SnapshotID())) {
		return
	}

	entries := idx.Entries()
	payload := make([]indexEntryPayload, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, indexEntryPayload{
			variantPayload: h.toPayload(entry.Variant),
			Keywords:       entry.Keywords,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, indexResponse{
		Language:   idx.Language(),
		Platform:   platform.String(),
		SnapshotID: idx.SnapshotID(),
		BuiltAt:    idx.BuiltAt().UTC().Format(time.RFC3339),
		Entries:    payload,
	})
}

func writeIndexUnavailable(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(r.Context(), w, httpx.Unavailable("index_unavailable", "keyword resources for the requested language could not be loaded").
		WithDetails(map[string]any{"language": languageFromRequest(r)}))
}

func (h *EmojiHandlers) sequenceParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	sequence := r.URL.Query().Get("sequence")
	if sequence == "" {
		httpx.WriteError(r.Context(), w, httpx.BadRequest("sequence is required"))
		return "", false
	}
	if len(sequence) > maxSequenceLength {
		httpx.WriteError(r.Context(), w, httpx.BadRequest("sequence is too long"))
		return "", false
	}
	return sequence, true
}

func (h *EmojiHandlers) platformParam(w http.ResponseWriter, r *http.Request) (emoji.Version, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("platform"))
	if raw == "" {
		return h.platform, true
	}
	platform, err := emoji.ParseVersion(raw)
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_platform", "platform must look like 18.4", http.StatusBadRequest))
		return emoji.Version{}, false
	}
	return platform, true
}

func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return defaultSearchLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		httpx.WriteError(r.Context(), w, httpx.BadRequest("limit must be a positive integer"))
		return 0, false
	}
	return min(limit, maxSearchLimit), true
}

func (h *EmojiHandlers) toPayload(v emoji.Variant) variantPayload {
	payload := variantPayload{
		ID:       string(v.Base),
		Sequence: v.Rendered,
	}
	for _, tone := range v.Tones.Tones() {
		payload.Tones = append(payload.Tones, tone.String())
	}
	if h.index != nil {
		if entry, ok := h.index.Entry(v.Base); ok {
			payload.Introduced = entry.Introduced.String()
		}
	}
	return payload
}

func (h *EmojiHandlers) toPayloads(variants []emoji.Variant) []variantPayload {
	out := make([]variantPayload, 0, len(variants))
	for _, v := range variants {
		out = append(out, h.toPayload(v))
	}
	return out
}

func legacyName(sequence string) *string {
	reaction, ok := emoji.Classify(sequence)
	if !ok {
		return nil
	}
	name := reaction.String()
	return &name
}
