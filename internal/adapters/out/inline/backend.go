// Package inline implements the blob backend that keeps payloads inside
// the metadata record.
package inline

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"
	"github.com/klauspost/compress/zstd"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
)

var _ out.BlobBackend = (*Backend)(nil)

// Supported payload codecs.
const (
	CodecNone = ""
	CodecZstd = "zstd"
)

// Backend stores payloads inline, optionally zstd-compressed.
type Backend struct {
	codec string
	enc   *zstd.Encoder
	dec   *zstd.Decoder
	log   zerowrap.Logger
}

// New creates an inline backend. compression is "none" (or empty) or "zstd".
func New(compression string, log zerowrap.Logger) (*Backend, error) {
	b := &Backend{log: log}

	// The decoder is always available so records written under a previous
	// compression setting stay readable.
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	b.dec = dec

	switch compression {
	case "", "none":
		b.codec = CodecNone
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithZeroFrames(true))
		if err != nil {
			dec.Close()
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		b.codec = CodecZstd
		b.enc = enc
	default:
		dec.Close()
		return nil, fmt.Errorf("unsupported inline compression %q", compression)
	}

	return b, nil
}

// Mode implements out.BlobBackend.
func (b *Backend) Mode() domain.StorageMode {
	return domain.StorageModeInline
}

// Put returns a handle carrying data, compressed when configured.
func (b *Backend) Put(_ context.Context, data []byte) (domain.BlobHandle, error) {
	if b.codec == CodecZstd {
		return domain.BlobHandle{
			Mode:  domain.StorageModeInline,
			Data:  b.enc.EncodeAll(data, make([]byte, 0, len(data)/2)),
			Codec: CodecZstd,
		}, nil
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	return domain.BlobHandle{Mode: domain.StorageModeInline, Data: stored}, nil
}

// Get returns the original bytes of an inline handle.
func (b *Backend) Get(_ context.Context, handle domain.BlobHandle) ([]byte, error) {
	if handle.Mode != domain.StorageModeInline {
		return nil, fmt.Errorf("%w: inline backend cannot resolve %q handle", domain.ErrStorageModeMismatch, handle.Mode)
	}

	switch handle.Codec {
	case CodecNone:
		if handle.Data == nil {
			return []byte{}, nil
		}
		return handle.Data, nil
	case CodecZstd:
		data, err := b.dec.DecodeAll(handle.Data, nil)
		if err != nil {
			b.log.Error().
				Err(err).
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "inline").
				Int(zerowrap.FieldSize, len(handle.Data)).
				Msg("stored zstd frame is corrupt")
			return nil, fmt.Errorf("%w: decode zstd payload: %v", domain.ErrPersistenceFailure, err)
		}
		if data == nil {
			data = []byte{}
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unknown inline codec %q", domain.ErrPersistenceFailure, handle.Codec)
	}
}

// Close releases the codec resources.
func (b *Backend) Close() error {
	if b.enc != nil {
		if err := b.enc.Close(); err != nil {
			return err
		}
	}
	b.dec.Close()
	return nil
}
