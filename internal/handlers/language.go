package handlers

import (
	"net/http"
	"strings"

	"github.com/hanko-field/emoji/internal/platform/requestctx"
	"github.com/hanko-field/emoji/internal/services"
)

// LanguageMiddleware resolves the request language from the lang query
// parameter or the Accept-Language header and stores it on the context.
func LanguageMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestctx.WithLanguage(r.Context(), requestLanguage(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestLanguage(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return services.NormalizeLanguage(lang)
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return services.NegotiateLanguage(header)
	}
	return services.FallbackLanguage
}

// languageFromRequest prefers the middleware result and resolves it inline otherwise.
func languageFromRequest(r *http.Request) string {
	if lang := requestctx.Language(r.Context()); lang != "" {
		return lang
	}
	return requestLanguage(r)
}
