// Package gcsloader reads keyword translations from Cloud Storage objects.
package gcsloader

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hanko-field/emoji/internal/platform/storage"
	"github.com/hanko-field/emoji/internal/repositories"
)

// ObjectSource reads whole objects. *storage.ObjectReader satisfies it.
type ObjectSource interface {
	ReadObject(ctx context.Context, object string) ([]byte, error)
}

// Loader implements repositories.TranslationLoader over <prefix>/<code>.json objects.
type Loader struct {
	source ObjectSource
	prefix string
	logger *zap.Logger
}

var _ repositories.TranslationLoader = (*Loader)(nil)

// New returns a loader reading objects below prefix.
func New(source ObjectSource, prefix string, logger *zap.Logger) (*Loader, error) {
	if source == nil {
		return nil, errors.New("gcsloader: object source is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, prefix: prefix, logger: logger}, nil
}

// LoadTranslations downloads and decodes the object for code.
func (l *Loader) LoadTranslations(ctx context.Context, code string) (map[string][]string, bool) {
	if err := repositories.ValidateLanguageCode(code); err != nil {
		l.logger.Warn("translation load rejected", zap.String("language", code), zap.Error(err))
		return nil, false
	}
	object, err := storage.TranslationObjectPath(l.prefix, code)
	if err != nil {
		l.logger.Warn("translation object path invalid", zap.String("language", code), zap.Error(err))
		return nil, false
	}

	data, err := l.source.ReadObject(ctx, object)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			l.logger.Info("translation object missing", zap.String("language", code), zap.String("object", object))
		} else {
			l.logger.Warn("translation download failed", zap.String("language", code), zap.String("object", object), zap.Error(err))
		}
		return nil, false
	}

	translations, err := repositories.DecodeTranslations(data)
	if err != nil {
		l.logger.Warn("translation decode failed", zap.String("language", code), zap.String("object", object), zap.Error(err))
		return nil, false
	}
	l.logger.Debug("translations loaded", zap.String("language", code), zap.String("object", object), zap.Int("entries", len(translations)))
	return translations, true
}
