package di

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	cloudstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/hanko-field/emoji/internal/emoji"
	"github.com/hanko-field/emoji/internal/platform/config"
	pfirestore "github.com/hanko-field/emoji/internal/platform/firestore"
	"github.com/hanko-field/emoji/internal/platform/observability"
	platformstorage "github.com/hanko-field/emoji/internal/platform/storage"
	"github.com/hanko-field/emoji/internal/repositories"
	firestoreRepo "github.com/hanko-field/emoji/internal/repositories/firestore"
	"github.com/hanko-field/emoji/internal/repositories/fsloader"
	"github.com/hanko-field/emoji/internal/repositories/gcsloader"
	"github.com/hanko-field/emoji/internal/services"
)

const (
	translationsCheckTimeout = 1500 * time.Millisecond
	searchIndexCheckTimeout  = 3 * time.Second
)

// Services bundles the service-layer components handlers rely upon.
type Services struct {
	Builder *services.SearchIndexBuilder
	Indexes *services.SearchIndexCache
	System  services.SystemService
}

// Container wires the emoji catalog, translation storage, and services for runtime use.
type Container struct {
	Config   config.Config
	Build    services.BuildInfo
	Catalog  *emoji.Catalog
	Index    *emoji.Index
	Loader   repositories.TranslationLoader
	Services Services

	closers []func() error
}

// Option customises container assembly.
type Option func(*containerOptions)

type containerOptions struct {
	logger  *zap.Logger
	loader  *translationBackend
	started time.Time
}

// WithLogger sets the base logger handed to repositories and services.
func WithLogger(logger *zap.Logger) Option {
	return func(o *containerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTranslationLoader replaces the configured translation source. ping backs
// the readiness check and may be nil.
func WithTranslationLoader(loader repositories.TranslationLoader, ping func(context.Context) error) Option {
	return func(o *containerOptions) {
		if loader != nil {
			o.loader = &translationBackend{name: "custom", loader: loader, ping: ping}
		}
	}
}

// WithStartTime records when the process started for uptime reporting.
func WithStartTime(started time.Time) Option {
	return func(o *containerOptions) {
		if !started.IsZero() {
			o.started = started
		}
	}
}

type translationBackend struct {
	name   string
	loader repositories.TranslationLoader
	ping   func(context.Context) error
	close  func() error
}

// NewContainer constructs the runtime dependencies for cfg.
func NewContainer(ctx context.Context, cfg config.Config, opts ...Option) (*Container, error) {
	if ctx == nil {
		return nil, errors.New("di: context is required")
	}
	options := containerOptions{logger: zap.NewNop(), started: time.Now()}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	logger := options.logger

	catalog, err := emoji.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("build emoji catalog: %w", err)
	}
	index := emoji.NewIndex(catalog)

	backend := options.loader
	if backend == nil {
		built, err := buildTranslationBackend(ctx, cfg, logger.Named("translations"))
		if err != nil {
			return nil, err
		}
		backend = built
	}

	container := &Container{
		Config:  cfg,
		Build:   buildInfo(cfg, options.started),
		Catalog: catalog,
		Index:   index,
		Loader:  backend.loader,
	}
	if backend.close != nil {
		container.closers = append(container.closers, backend.close)
	}

	svc, err := buildServices(cfg, container, backend, logger)
	if err != nil {
		_ = container.Close()
		return nil, err
	}
	container.Services = svc
	return container, nil
}

// Close releases translation storage clients.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func buildTranslationBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (*translationBackend, error) {
	logger = logger.With(zap.String("source", cfg.Translations.Source))

	switch cfg.Translations.Source {
	case config.SourceEmbedded, "":
		loader, err := fsloader.NewEmbedded(fsloader.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("build embedded translations: %w", err)
		}
		logDiscoveredLanguages(loader, logger)
		return &translationBackend{name: config.SourceEmbedded, loader: loader, ping: loader.Ping}, nil

	case config.SourceDir:
		loader, err := fsloader.NewDir(cfg.Translations.Dir, fsloader.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("build directory translations: %w", err)
		}
		logDiscoveredLanguages(loader, logger)
		return &translationBackend{name: config.SourceDir, loader: loader, ping: loader.Ping}, nil

	case config.SourceGCS:
		client, err := cloudstorage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("build storage client: %w", err)
		}
		reader, err := platformstorage.NewObjectReader(client, cfg.Translations.Bucket)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("build storage reader: %w", err)
		}
		loader, err := gcsloader.New(reader, cfg.Translations.Prefix, logger.With(zap.String("bucket", reader.Bucket())))
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("build storage translations: %w", err)
		}
		return &translationBackend{name: config.SourceGCS, loader: loader, ping: reader.Ping, close: client.Close}, nil

	case config.SourceFirestore:
		provider := pfirestore.NewProvider(cfg.Firestore)
		repo, err := firestoreRepo.NewTranslationRepository(provider, cfg.Translations.Collection, logger)
		if err != nil {
			_ = provider.Close()
			return nil, fmt.Errorf("build firestore translations: %w", err)
		}
		return &translationBackend{name: config.SourceFirestore, loader: repo, ping: repo.Ping, close: provider.Close}, nil
	}
	return nil, fmt.Errorf("unknown translation source %q", cfg.Translations.Source)
}

// logDiscoveredLanguages reports the resources a file loader serves and warns
// about supported languages that will fall back to English keywords.
func logDiscoveredLanguages(loader *fsloader.Loader, logger *zap.Logger) {
	codes, err := loader.Languages()
	if err != nil {
		logger.Warn("list translation languages failed", zap.Error(err))
		return
	}
	logger.Info("translation languages discovered", zap.Strings("languages", codes))
	for _, code := range services.SupportedLanguages() {
		if !slices.Contains(codes, code) {
			logger.Warn("translation resource missing", zap.String("language", code))
		}
	}
}

func buildServices(cfg config.Config, c *Container, backend *translationBackend, logger *zap.Logger) (Services, error) {
	var svc Services

	builder, err := services.NewSearchIndexBuilder(services.SearchIndexBuilderDeps{
		Index:    c.Index,
		Loader:   backend.loader,
		Platform: cfg.Platform.DefaultVersion,
		Clock:    time.Now,
		Logger:   observability.ServiceLogger(logger.Named("search_index")),
	})
	if err != nil {
		return Services{}, fmt.Errorf("build search index builder: %w", err)
	}
	svc.Builder = builder

	cache, err := services.NewSearchIndexCache(services.SearchIndexCacheDeps{
		Builder: builder,
		TTL:     cfg.Index.CacheTTL,
		Clock:   time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build search index cache: %w", err)
	}
	svc.Indexes = cache

	health, err := repositories.NewDependencyHealthRepository(dependencyChecks(c.Index, backend, cache, cfg.Platform.DefaultVersion))
	if err != nil {
		return Services{}, fmt.Errorf("build health repository: %w", err)
	}
	system, err := services.NewSystemService(services.SystemServiceDeps{
		HealthRepository: health,
		Clock:            time.Now,
		Build:            c.Build,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build system service: %w", err)
	}
	svc.System = system

	return svc, nil
}

func dependencyChecks(index *emoji.Index, backend *translationBackend, indexes services.SearchIndexProvider, platform emoji.Version) []repositories.DependencyCheck {
	checks := []repositories.DependencyCheck{
		{
			Name: "catalog",
			Check: func(context.Context) error {
				if index.Len() == 0 {
					return errors.New("emoji index is empty")
				}
				return nil
			},
		},
		{
			Name:    "searchIndex",
			Timeout: searchIndexCheckTimeout,
			Check: func(ctx context.Context) error {
				if _, ok := indexes.SearchIndex(ctx, services.FallbackLanguage, platform); !ok {
					return fmt.Errorf("%s search index unavailable", services.FallbackLanguage)
				}
				return nil
			},
		},
	}
	if backend.ping != nil {
		checks = append(checks, repositories.DependencyCheck{
			Name:    "translations",
			Timeout: translationsCheckTimeout,
			Check:   backend.ping,
		})
	}
	return checks
}

func buildInfo(cfg config.Config, started time.Time) services.BuildInfo {
	return services.BuildInfo{
		Version:     cfg.App.BuildVersion,
		CommitSHA:   cfg.App.CommitSHA,
		Environment: cfg.App.Environment,
		StartedAt:   started,
	}
}
