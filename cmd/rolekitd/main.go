// Command rolekitd runs a demo server around the role-resolution
// engine: an in-process identity provider, a pluggable document store,
// and the HTTP navigation adapter.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agentmartinv1/rolekit"
	"github.com/agentmartinv1/rolekit/internal/adapters/driven/documents"
	"github.com/agentmartinv1/rolekit/internal/adapters/driven/identity"
	"github.com/agentmartinv1/rolekit/internal/adapters/driven/metrics"
	"github.com/agentmartinv1/rolekit/internal/adapters/driving/httpnav"
	"github.com/agentmartinv1/rolekit/internal/config"
	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	docs, err := newDocumentStore(cfg, logger)
	if err != nil {
		logger.Fatal("document store init failed", zap.Error(err))
	}

	var recorder ports.MetricsRecorder = metrics.NewNoopMetricsRecorder()
	if cfg.MetricsEnabled {
		recorder = metrics.NewPrometheusMetricsRecorder()
	}

	provider := identity.NewLocalProvider(logger)
	tokens := identity.NewTokenCodec([]byte(cfg.TokenSecret), cfg.TokenTTL)

	roles := rolekit.NewRoleStore(docs, logger)
	resolver := rolekit.NewResolver(roles, recorder, logger)
	gateway := rolekit.NewGateway(provider, roles, recorder, logger)
	dispatcher := rolekit.NewDispatcher(gateway, resolver, logger)

	nav := httpnav.NewServer(gateway, dispatcher, resolver, roles, tokens, logger)

	mux := http.NewServeMux()
	mux.Handle("/", nav.Handler())
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("rolekitd listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("backend", string(cfg.Backend)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("rolekitd stopped")
}

func newDocumentStore(cfg config.Config, logger *zap.Logger) (ports.DocumentStore, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return documents.NewFileStore(cfg.DocumentFile, logger)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return documents.NewRedisStore(client), nil
	default:
		return documents.NewInMemoryStore(), nil
	}
}
