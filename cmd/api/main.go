// Package main runs the summarization HTTP API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tldr/internal/config"
	hhttp "tldr/internal/handler/http"
	"tldr/internal/handler/http/requestid"
	"tldr/internal/observability/logging"
	"tldr/internal/observability/tracing"
	"tldr/internal/usecase/summary"
)

func main() {
	logger := initLogger()

	engineCfg, warnings := config.LoadEngineConfig()
	for _, warning := range warnings {
		logger.Warn("engine configuration", slog.String("warning", warning))
	}

	serverCfg, warnings, err := config.LoadServerConfig()
	for _, warning := range warnings {
		logger.Warn("server configuration", slog.String("warning", warning))
	}
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	service := summary.NewService(logger, engineCfg.DefaultPercentage, engineCfg.DefaultMode, engineCfg.ScoringParallelism)
	handler := setupServer(logger, service, serverCfg, version)

	runServer(logger, handler, serverCfg, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer registers routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, service *summary.Service, cfg config.ServerConfig, version string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/summarize", &hhttp.SummarizeHandler{Service: service})
	mux.Handle("/healthz", &hhttp.HealthHandler{
		Engine:  hhttp.EngineCheck{Service: service},
		Version: version,
	})
	mux.Handle("/readyz", &hhttp.ReadyHandler{})
	mux.Handle("/livez", &hhttp.LiveHandler{})
	mux.Handle("/metrics", promhttp.Handler())

	// Recovery sits outermost so every later stage is covered; the body
	// limit sits innermost so handlers see the capped reader directly.
	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Metrics,
		hhttp.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
	)
}

// runServer starts the HTTP server and handles graceful shutdown on
// SIGINT/SIGTERM.
func runServer(logger *slog.Logger, handler http.Handler, cfg config.ServerConfig, version string) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
