package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
)

const janitorInterval = time.Minute

// RunRegistry loads configuration, serves the registry API and blocks until
// ctx is cancelled or SIGINT/SIGTERM is received.
func RunRegistry(ctx context.Context, configPath string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "registry").
		Str("backend", cfg.Storage.Backend).
		Str("database", cfg.Storage.SQLite.Path).
		Int("pool_size", cfg.Storage.SQLite.PoolSize).
		Msg("starting registry")

	srv, err := NewServer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Error().
				Str(zerowrap.FieldLayer, "app").
				Str(zerowrap.FieldComponent, "registry").
				Err(err).
				Msg("failed to release resources")
		}
	}()

	go srv.RunJanitor(ctx)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)),
		Handler:           srv.Handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	return serve(ctx, httpServer, cfg.Server.ShutdownTimeout, log)
}

// serve runs httpServer until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, httpServer *http.Server, shutdownTimeout time.Duration, log zerowrap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str(zerowrap.FieldComponent, "registry").
			Str("addr", httpServer.Addr).
			Msg("HTTP registry server listening")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return log.WrapErr(err, "HTTP registry server failed")
		}
		return nil
	case <-ctx.Done():
		log.Info().
			Str(zerowrap.FieldLayer, "app").
			Str(zerowrap.FieldComponent, "registry").
			Msg("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return log.WrapErr(err, "HTTP server shutdown error")
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "registry").
		Msg("registry shutdown complete")
	return nil
}
