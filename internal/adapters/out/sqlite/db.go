// Package sqlite implements blob and manifest persistence on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/semaphore"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bnema/walrus-registry/internal/domain"
)

const (
	busyTimeoutMS          = 5000
	defaultPoolSize        = 4
	defaultAcquireTimeout  = 5 * time.Second
	defaultConnMaxLifetime = 5 * time.Minute
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Config holds the parameters for opening the database.
type Config struct {
	// Path is the database file. Its parent directory is created if missing.
	Path string

	// PoolSize bounds the number of concurrent operations and open connections.
	PoolSize int

	// AcquireTimeout bounds how long an operation waits for a free slot
	// before failing with domain.ErrResourceUnavailable.
	AcquireTimeout time.Duration
}

// DB is a bounded pool of SQLite connections shared by the stores.
type DB struct {
	db             *sql.DB
	sem            *semaphore.Weighted
	poolSize       int
	acquireTimeout time.Duration
	path           string
	log            zerowrap.Logger
}

// Open opens the database, applies the connection pragmas and runs pending migrations.
func Open(ctx context.Context, cfg Config, log zerowrap.Logger) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = defaultAcquireTimeout
	}

	// A relative path would become the authority of the file: URI.
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path %q: %w", cfg.Path, err)
	}
	cfg.Path = path

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", sqliteDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlite").
		Str("path", cfg.Path).
		Int("pool_size", cfg.PoolSize).
		Dur("acquire_timeout", cfg.AcquireTimeout).
		Msg("database opened")

	return &DB{
		db:             sqlDB,
		sem:            semaphore.NewWeighted(int64(cfg.PoolSize)),
		poolSize:       cfg.PoolSize,
		acquireTimeout: cfg.AcquireTimeout,
		path:           cfg.Path,
		log:            log,
	}, nil
}

// Close closes the underlying connections.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// PoolSize returns the configured pool size.
func (d *DB) PoolSize() int {
	return d.poolSize
}

// acquire reserves one pool slot. The returned func releases it.
func (d *DB) acquire(ctx context.Context) (func(), error) {
	waitCtx, cancel := context.WithTimeout(ctx, d.acquireTimeout)
	defer cancel()

	if err := d.sem.Acquire(waitCtx, 1); err != nil {
		return nil, fmt.Errorf("%w: no database connection available after %s", domain.ErrResourceUnavailable, d.acquireTimeout)
	}
	return func() { d.sem.Release(1) }, nil
}

// do runs fn while holding a pool slot.
func (d *DB) do(ctx context.Context, fn func(*sql.DB) error) error {
	release, err := d.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(d.db)
}

// sqliteDSN builds a file DSN that applies the pragmas to every new connection.
func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_txlock", "immediate")

	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{Scheme: "file", Path: path, RawQuery: q.Encode()}
	return u.String()
}

// storeErr classifies a driver error. Lock contention that outlived the
// busy timeout is reported as unavailability; everything else is a
// persistence failure.
func storeErr(op string, err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%w: %s: %v", domain.ErrResourceUnavailable, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrPersistenceFailure, op, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
