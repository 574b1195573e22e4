// Package fsloader reads keyword translations from a file system: the
// resources compiled into the binary or a directory on disk.
package fsloader

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/hanko-field/emoji/internal/repositories"
)

//go:embed resources/*.json
var embedded embed.FS

const fallbackLanguage = "en"

// Loader implements repositories.TranslationLoader over an fs.FS holding one
// <code>.json file per language.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger
}

var _ repositories.TranslationLoader = (*Loader)(nil)

// Option customises a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report load failures.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns a loader reading from fsys.
func New(fsys fs.FS, opts ...Option) (*Loader, error) {
	if fsys == nil {
		return nil, errors.New("fsloader: file system is required")
	}
	loader := &Loader{fsys: fsys, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(loader)
		}
	}
	return loader, nil
}

// NewEmbedded returns a loader over the resources compiled into the binary.
func NewEmbedded(opts ...Option) (*Loader, error) {
	sub, err := fs.Sub(embedded, "resources")
	if err != nil {
		return nil, fmt.Errorf("fsloader: embedded resources: %w", err)
	}
	return New(sub, opts...)
}

// NewDir returns a loader over an on-disk directory.
func NewDir(dir string, opts ...Option) (*Loader, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("fsloader: directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fsloader: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fsloader: %s is not a directory", dir)
	}
	return New(os.DirFS(dir), opts...)
}

// LoadTranslations reads and decodes <code>.json.
func (l *Loader) LoadTranslations(ctx context.Context, code string) (map[string][]string, bool) {
	if err := ctx.Err(); err != nil {
		l.logger.Warn("translation load cancelled", zap.String("language", code), zap.Error(err))
		return nil, false
	}
	if err := repositories.ValidateLanguageCode(code); err != nil {
		l.logger.Warn("translation load rejected", zap.String("language", code), zap.Error(err))
		return nil, false
	}

	name := repositories.TranslationObjectName(code)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("translation resource missing", zap.String("language", code), zap.String("file", name))
		} else {
			l.logger.Warn("translation read failed", zap.String("language", code), zap.String("file", name), zap.Error(err))
		}
		return nil, false
	}

	translations, err := repositories.DecodeTranslations(data)
	if err != nil {
		l.logger.Warn("translation decode failed", zap.String("language", code), zap.String("file", name), zap.Error(err))
		return nil, false
	}
	l.logger.Debug("translations loaded", zap.String("language", code), zap.Int("entries", len(translations)))
	return translations, true
}

// Languages lists the language codes with a resource file, sorted.
func (l *Loader) Languages() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("fsloader: list resources: %w", err)
	}
	codes := make([]string, 0, len(matches))
	for _, match := range matches {
		code := strings.TrimSuffix(path.Base(match), ".json")
		if repositories.ValidateLanguageCode(code) == nil {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes, nil
}

// Ping checks that the fallback language resource is readable.
func (l *Loader) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := repositories.TranslationObjectName(fallbackLanguage)
	if _, err := fs.Stat(l.fsys, name); err != nil {
		return fmt.Errorf("fsloader: %s: %w", name, err)
	}
	return nil
}
