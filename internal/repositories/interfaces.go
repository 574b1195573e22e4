package repositories

import (
	"context"

	"github.com/hanko-field/emoji/internal/domain"
)

// TranslationLoader reads the keyword resource of one language. Keys are
// rendered emoji sequences. Any failure (missing resource, unreachable
// backend, malformed payload) yields false; implementations log the cause.
type TranslationLoader interface {
	LoadTranslations(ctx context.Context, code string) (map[string][]string, bool)
}

// TranslationLoaderFunc adapts a function to TranslationLoader.
type TranslationLoaderFunc func(ctx context.Context, code string) (map[string][]string, bool)

// LoadTranslations implements TranslationLoader.
func (f TranslationLoaderFunc) LoadTranslations(ctx context.Context, code string) (map[string][]string, bool) {
	return f(ctx, code)
}

// HealthRepository reports the health of external dependencies.
type HealthRepository interface {
	Collect(ctx context.Context) (domain.SystemHealthReport, error)
}
