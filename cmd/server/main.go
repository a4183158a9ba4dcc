package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/htmlextract/internal/api"
	"github.com/dgallion1/htmlextract/internal/config"
)

var shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.ValidateServer(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		log.Error("listen failed", "addr", httpServer.Addr, "error", err)
		os.Exit(1)
	}

	log.Info("starting htmlextract server", "port", cfg.Port, "max_upload_bytes", cfg.MaxUploadBytes)
	if err := serve(ctx, httpServer, ln, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// serve runs httpServer on ln until ctx is done, then shuts down gracefully.
// It returns only after in-flight requests have drained or the shutdown
// timeout has expired.
func serve(ctx context.Context, httpServer *http.Server, ln net.Listener, log *slog.Logger) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		drained <- httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-drained; err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
