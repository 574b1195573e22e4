package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/hanko-field/emoji/internal/di"
	"github.com/hanko-field/emoji/internal/handlers"
	"github.com/hanko-field/emoji/internal/platform/config"
	"github.com/hanko-field/emoji/internal/platform/observability"
)

func main() {
	started := time.Now()
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("emoji")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	otel.SetTextMapPropagator(observability.DefaultPropagator())

	container, err := di.NewContainer(ctx, cfg,
		di.WithLogger(logger),
		di.WithStartTime(started),
	)
	if err != nil {
		logger.Fatal("failed to initialise container", zap.Error(err), zap.String("translationsSource", cfg.Translations.Source))
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("container close error", zap.Error(err))
		}
	}()
	logger.Info("emoji catalog loaded",
		zap.Int("entries", container.Catalog.Len()),
		zap.Int("variants", container.Index.Len()),
		zap.String("platform", cfg.Platform.DefaultVersion.String()),
		zap.String("translationsSource", cfg.Translations.Source),
	)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger),
		observability.TraceMiddleware(cfg.App.ProjectID),
		observability.RecoveryMiddleware(logger),
		handlers.LanguageMiddleware(),
		observability.RequestLoggerMiddleware(),
	}

	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthBuildInfo(container.Build),
		handlers.WithHealthSystemService(container.Services.System),
	)
	emojiHandlers := handlers.NewEmojiHandlers(container.Index, container.Services.Indexes, cfg.Platform.DefaultVersion)

	opts := []handlers.Option{
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithEmojiRoutes(emojiHandlers.Routes),
	}

	router := handlers.NewRouter(opts...)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("emoji service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
