// ABOUTME: Entry point for the heap sizing analyzer service
// ABOUTME: Provides an HTTP API over the generational heap sizing policy

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/heap-sizing-analyzer/config"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/handlers"
	"github.com/markalston/heap-sizing-analyzer/logger"
	"github.com/markalston/heap-sizing-analyzer/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Heap Sizing Analyzer")

	// Initialize the flag store and apply operator overrides
	store := flags.NewStore()
	for _, override := range cfg.FlagOverrides {
		if err := store.SetCommandLine(override.Name, override.Bytes); err != nil {
			slog.Error("Invalid flag override", "flag", override.Name, "error", err)
			os.Exit(1)
		}
		slog.Info("Flag fixed by operator", "flag", override.Name, "bytes", override.Bytes)
	}

	// Register routes with logging middleware
	h := handlers.NewHandler(cfg, store)
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.LogRequest(route.Handler))
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
