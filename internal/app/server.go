package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/adapters/in/http/middleware"
	"github.com/bnema/walrus-registry/internal/adapters/in/http/registry"
	"github.com/bnema/walrus-registry/internal/adapters/out/inline"
	"github.com/bnema/walrus-registry/internal/adapters/out/ratelimit"
	"github.com/bnema/walrus-registry/internal/adapters/out/sqlite"
	"github.com/bnema/walrus-registry/internal/adapters/out/walrus"
	"github.com/bnema/walrus-registry/internal/boundaries/out"
	registrySvc "github.com/bnema/walrus-registry/internal/usecase/registry"
)

// Server holds the wired registry and the resources it owns.
type Server struct {
	Handler  http.Handler
	Service  *registrySvc.Service
	limiters *ratelimit.Limiters
	db       *sqlite.DB
	closers  []func() error
}

// deps lets tests replace process-level collaborators.
type deps struct {
	walrusRunner walrus.CommandRunner
	skipLookPath bool
}

// NewServer opens storage, selects the blob backend and builds the HTTP
// handler chain.
func NewServer(ctx context.Context, cfg Config, log zerowrap.Logger) (*Server, error) {
	return newServer(ctx, cfg, deps{}, log)
}

func newServer(ctx context.Context, cfg Config, d deps, log zerowrap.Logger) (*Server, error) {
	trusted, err := middleware.ParseTrustedProxies(cfg.API.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("api.rate_limit.trusted_proxies: %w", err)
	}

	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:           cfg.Storage.SQLite.Path,
		PoolSize:       cfg.Storage.SQLite.PoolSize,
		AcquireTimeout: cfg.Storage.SQLite.AcquireTimeout,
	}, log)
	if err != nil {
		return nil, log.WrapErr(err, "failed to open metadata store")
	}

	s := &Server{db: db}
	s.closers = append(s.closers, db.Close)

	backend, err := createBackend(cfg, d, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	if c, ok := backend.(interface{ Close() error }); ok {
		s.closers = append(s.closers, c.Close)
	}

	s.Service = registrySvc.NewService(
		sqlite.NewBlobStore(db, log),
		sqlite.NewManifestStore(db, log),
		backend,
	)

	maxManifest, maxBlob, err := cfg.bodyLimits()
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	handler := registry.NewHandler(s.Service, registry.Options{
		VerifyDigest:    cfg.Registry.VerifyDigest,
		MaxManifestSize: maxManifest,
		MaxBlobSize:     maxBlob,
	}, log)

	chain := []func(http.Handler) http.Handler{
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, trusted),
	}

	if cfg.API.RateLimit.Enabled {
		s.limiters, err = ratelimit.NewLimiters(ratelimit.Config{
			GlobalRPS: cfg.API.RateLimit.GlobalRPS,
			PerIPRPS:  cfg.API.RateLimit.PerIPRPS,
			Burst:     cfg.API.RateLimit.Burst,
			IdleTTL:   cfg.API.RateLimit.IdleTTL,
		}, log)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("api.rate_limit: %w", err)
		}
		chain = append(chain, registry.RateLimitMiddleware(s.limiters.Global, s.limiters.PerIP, trusted, log))
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	s.Handler = middleware.Chain(chain...)(mux)

	return s, nil
}

func createBackend(cfg Config, d deps, log zerowrap.Logger) (out.BlobBackend, error) {
	if !cfg.usesWalrus() {
		backend, err := inline.New(cfg.Storage.Inline.Compression, log)
		if err != nil {
			return nil, fmt.Errorf("storage.inline: %w", err)
		}
		return backend, nil
	}

	backend := walrus.New(walrus.Config{
		Binary:     cfg.Walrus.Binary,
		ConfigPath: cfg.Walrus.Config,
		Epochs:     cfg.Walrus.Epochs,
		Timeout:    cfg.Walrus.Timeout,
		TmpDir:     cfg.Walrus.TmpDir,
	}, d.walrusRunner, log)

	if !d.skipLookPath {
		if err := backend.CheckAvailable(); err != nil {
			return nil, err
		}
	}
	return backend, nil
}

// RunJanitor prunes idle rate limit state until ctx is done.
func (s *Server) RunJanitor(ctx context.Context) {
	if s.limiters == nil {
		return
	}
	s.limiters.Run(ctx, janitorInterval)
}

// Close releases every resource opened by NewServer.
func (s *Server) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
