package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"forexquote/internal/config"
	"forexquote/internal/coordinator"
	"forexquote/internal/forex"
	"forexquote/internal/ratelimit"
	"forexquote/internal/yfin"
)

func main() {
	// Symbols given on the command line replace FOREX_SYMBOLS
	cfg, err := config.Load(os.Args[1:]...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.LogLevel)

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	client := forex.NewClient(newBackend(cfg))

	coord := coordinator.New(client, cfg.Symbols, cfg.BatchSize,
		coordinator.WithSession(cfg.Session()))

	fetchCtx, fetchCancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer fetchCancel()

	fmt.Println("Fetching forex quotes...")
	fmt.Println("================================================")
	if err := coord.Run(fetchCtx); err != nil {
		log.Fatalf("Coordinator failed: %v", err)
	}

	fmt.Println("================================================")
	fmt.Println("All quotes fetched!")
}

// newBackend builds the quote backend from the HTTP and rate limit settings in cfg
func newBackend(cfg *config.Config) *yfin.Backend {
	limiter := ratelimit.New()
	limiter.SetLimit(ratelimit.APIYahooFinance, cfg.RequestsPerSecond)

	return yfin.New(cfg.YFinBaseURL,
		yfin.WithLimiter(limiter),
		yfin.WithTimeout(cfg.RequestTimeout),
		yfin.WithRetryCount(cfg.RetryCount))
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	slog.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server failed", "error", err)
	}
}
