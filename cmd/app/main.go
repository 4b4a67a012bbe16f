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

	"github.com/chris/arena-ledger/pkg/bootstrap"
	"github.com/chris/arena-ledger/pkg/handlers"
	"github.com/chris/arena-ledger/pkg/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.Load(ctx)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	handler := handlers.NewApiHandler(deps.Store, deps.Settlement())
	srv := &http.Server{
		Addr: ":" + deps.Config.HTTPPort,
		Handler: router.New(handler, router.Options{
			Logger:         deps.Logger,
			AllowedOrigins: deps.Config.CORSAllowedOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			deps.Logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	deps.Logger.Info("Starting server", "port", deps.Config.HTTPPort, "storage", deps.Config.StorageDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		deps.Logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
