package services

import (
	"context"

	"github.com/hanko-field/emoji/internal/domain"
	"github.com/hanko-field/emoji/internal/emoji"
)

type (
	SystemHealthReport = domain.SystemHealthReport
	SystemHealthCheck  = domain.SystemHealthCheck
)

// SystemService exposes health reporting for the health endpoints.
type SystemService interface {
	HealthReport(ctx context.Context) (SystemHealthReport, error)
}

// SearchIndexProvider returns a search index for a language and client platform.
// The language is normalised by the provider; false means the primary
// language resource could not be loaded.
type SearchIndexProvider interface {
	SearchIndex(ctx context.Context, lang string, platform emoji.Version) (*SearchIndex, bool)
}
