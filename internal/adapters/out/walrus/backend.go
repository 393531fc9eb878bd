// Package walrus implements the delegated blob backend on top of the
// walrus command line client.
package walrus

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
)

var _ out.BlobBackend = (*Backend)(nil)

const (
	defaultBinary  = "walrus"
	defaultTimeout = 2 * time.Minute
)

// Config holds the walrus client settings.
type Config struct {
	Binary     string
	ConfigPath string
	Epochs     int
	Timeout    time.Duration
	TmpDir     string
}

// Backend stores payloads on Walrus and keeps only the returned blob id.
type Backend struct {
	cfg    Config
	runner CommandRunner
	log    zerowrap.Logger
}

// New creates a walrus backend. A nil runner uses ExecRunner.
func New(cfg Config, runner CommandRunner, log zerowrap.Logger) *Backend {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Backend{cfg: cfg, runner: runner, log: log}
}

// Mode implements out.BlobBackend.
func (b *Backend) Mode() domain.StorageMode {
	return domain.StorageModeDelegated
}

// CheckAvailable reports whether the walrus binary can be found.
func (b *Backend) CheckAvailable() error {
	if _, err := exec.LookPath(b.cfg.Binary); err != nil {
		return fmt.Errorf("walrus client %q not found: %w", b.cfg.Binary, err)
	}
	return nil
}

// Put writes data to a temporary file and stores it with "walrus store".
// The call is detached from ctx cancellation so an upload that reached the
// network is never abandoned half way; it is still bounded by the timeout.
func (b *Backend) Put(ctx context.Context, data []byte) (domain.BlobHandle, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.Timeout)
	defer cancel()

	start := time.Now()

	path, err := b.writeTemp(data)
	if err != nil {
		return domain.BlobHandle{}, fmt.Errorf("%w: %v", domain.ErrExternalStoreFailure, err)
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			b.log.Warn().
				Err(rmErr).
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "walrus").
				Str("path", path).
				Msg("failed to remove temporary blob file")
		}
	}()

	args := b.globalArgs()
	args = append(args, "store")
	if b.cfg.Epochs > 0 {
		args = append(args, "--epochs", strconv.Itoa(b.cfg.Epochs))
	}
	args = append(args, path)

	output, err := b.runner.Run(ctx, b.cfg.Binary, args...)
	if err != nil {
		return domain.BlobHandle{}, b.fail("store", err)
	}

	blobID, err := parseStoreResponse(output)
	if err != nil {
		return domain.BlobHandle{}, b.fail("store", err)
	}

	b.log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "walrus").
		Str("blob_id", blobID).
		Int(zerowrap.FieldSize, len(data)).
		Dur(zerowrap.FieldDuration, time.Since(start)).
		Msg("blob stored on walrus")

	return domain.BlobHandle{Mode: domain.StorageModeDelegated, ExternalID: blobID}, nil
}

// Get reads the payload identified by handle with "walrus read".
func (b *Backend) Get(ctx context.Context, handle domain.BlobHandle) ([]byte, error) {
	if handle.Mode != domain.StorageModeDelegated {
		return nil, fmt.Errorf("%w: walrus backend cannot resolve %q handle", domain.ErrStorageModeMismatch, handle.Mode)
	}
	if handle.ExternalID == "" {
		return nil, fmt.Errorf("%w: handle has no blob id", domain.ErrExternalStoreFailure)
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	args := append(b.globalArgs(), "read", handle.ExternalID)

	output, err := b.runner.Run(ctx, b.cfg.Binary, args...)
	if err != nil {
		return nil, b.fail("read", err)
	}

	data, err := parseReadResponse(output)
	if err != nil {
		return nil, b.fail("read", err)
	}

	b.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "walrus").
		Str("blob_id", handle.ExternalID).
		Int(zerowrap.FieldSize, len(data)).
		Msg("blob read from walrus")

	return data, nil
}

func (b *Backend) globalArgs() []string {
	args := []string{"--json"}
	if b.cfg.ConfigPath != "" {
		args = append(args, "--config", b.cfg.ConfigPath)
	}
	return args
}

func (b *Backend) writeTemp(data []byte) (string, error) {
	f, err := os.CreateTemp(b.cfg.TmpDir, "walreg-blob-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return path, nil
}

func (b *Backend) fail(op string, err error) error {
	b.log.Error().
		Err(err).
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "walrus").
		Str("operation", op).
		Msg("walrus call failed")
	return fmt.Errorf("%w: walrus %s: %v", domain.ErrExternalStoreFailure, op, err)
}
