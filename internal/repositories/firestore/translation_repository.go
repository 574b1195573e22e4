package firestore

import (
	"context"
	"errors"

	"go.uber.org/zap"

	pfirestore "github.com/hanko-field/emoji/internal/platform/firestore"
	"github.com/hanko-field/emoji/internal/repositories"
)

const defaultTranslationCollection = "emojiTranslations"

// translationDocument is stored at <collection>/<code>.
type translationDocument struct {
	Keywords map[string][]string `firestore:"keywords"`
}

type translationDocuments interface {
	Get(ctx context.Context, id string) (pfirestore.Document[translationDocument], error)
	Ping(ctx context.Context) error
}

// TranslationRepository loads keyword translations from Firestore documents.
type TranslationRepository struct {
	docs       translationDocuments
	collection string
	logger     *zap.Logger
}

var _ repositories.TranslationLoader = (*TranslationRepository)(nil)

// NewTranslationRepository constructs a Firestore-backed translation loader.
func NewTranslationRepository(provider *pfirestore.Provider, collection string, logger *zap.Logger) (*TranslationRepository, error) {
	if provider == nil {
		return nil, errors.New("translation repository requires firestore provider")
	}
	if collection == "" {
		collection = defaultTranslationCollection
	}
	reader := pfirestore.NewDocumentReader[translationDocument](provider, collection, nil)
	return newTranslationRepository(reader, collection, logger), nil
}

func newTranslationRepository(docs translationDocuments, collection string, logger *zap.Logger) *TranslationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationRepository{docs: docs, collection: collection, logger: logger}
}

// LoadTranslations reads the keywords field of the language document.
func (r *TranslationRepository) LoadTranslations(ctx context.Context, code string) (map[string][]string, bool) {
	if err := repositories.ValidateLanguageCode(code); err != nil {
		r.logger.Warn("translation load rejected", zap.String("language", code), zap.Error(err))
		return nil, false
	}

	doc, err := r.docs.Get(ctx, code)
	if err != nil {
		if pfirestore.IsNotFound(err) {
			r.logger.Info("translation document missing", zap.String("collection", r.collection), zap.String("language", code))
		} else {
			r.logger.Warn("translation fetch failed", zap.String("collection", r.collection), zap.String("language", code), zap.Error(err))
		}
		return nil, false
	}

	translations, err := repositories.NormalizeTranslations(doc.Data.Keywords)
	if err != nil {
		r.logger.Warn("translation document invalid", zap.String("collection", r.collection), zap.String("language", code), zap.Error(err))
		return nil, false
	}
	r.logger.Debug("translations loaded",
		zap.String("language", code),
		zap.Int("entries", len(translations)),
		zap.Time("updatedAt", doc.UpdateTime),
	)
	return translations, true
}

// Ping checks that the translation collection is reachable.
func (r *TranslationRepository) Ping(ctx context.Context) error {
	return r.docs.Ping(ctx)
}
