package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Belphemur/ShowGraph/internal/cache"
	"github.com/Belphemur/ShowGraph/internal/client"
	"github.com/Belphemur/ShowGraph/internal/config"
	"github.com/Belphemur/ShowGraph/internal/graphql"
	"github.com/Belphemur/ShowGraph/internal/health"
	"github.com/Belphemur/ShowGraph/internal/metrics"
	"github.com/Belphemur/ShowGraph/internal/reporting"
	"github.com/Belphemur/ShowGraph/internal/resolver"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("upstream_base_url", cfg.UpstreamBaseURL).
		Str("schedule_date", cfg.ScheduleDate).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Bool("graphiql", cfg.GraphiQL).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Application started with configuration")

	flushSentry, err := reporting.Init(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Sentry")
	}
	defer flushSentry()

	responseCache, err := newResponseCache(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.Cache.Provider).Msg("Failed to create upstream cache")
	}

	upstream := client.NewClient(cfg, responseCache)
	defer func() {
		if err := upstream.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close upstream client")
		}
	}()

	schema, err := graphql.NewSchema(resolver.NewResolver(upstream, cfg.ScheduleDate))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build GraphQL schema")
	}
	httpServer := graphql.NewHTTPServer(cfg, graphql.NewRouter(cfg, schema))

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	var healthServer *health.Server
	if cfg.Health.Enabled {
		healthServer = health.NewServer()
		address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Health.Port)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			logger.Fatal().Err(err).Str("address", address).Msg("Failed to create health listener")
		}
		go func() {
			logger.Info().Str("address", address).Msg("Starting gRPC health server")
			if err := healthServer.Serve(listener); err != nil {
				logger.Error().Err(err).Msg("Failed to serve gRPC health")
			}
		}()
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		if healthServer != nil {
			healthServer.SetServing(false)
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown GraphQL server")
		}
	}()

	logger.Info().Str("address", httpServer.Addr).Str("path", graphql.Path).Msg("Starting GraphQL server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to serve GraphQL")
	}

	if healthServer != nil {
		healthServer.Shutdown()
	}
	logger.Info().Msg("Server stopped gracefully")
}

// newResponseCache builds the upstream response cache, or returns nil when caching is disabled.
func newResponseCache(cfg *config.Config) (cache.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	ttl, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache.ttl %q: %w", cfg.Cache.TTL, err)
	}

	return cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           ttl,
		Logger:        cache.NewZerologLogger(config.GetLogger()),
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         "upstream",
	})
}
