package out

import (
	"context"

	"github.com/bnema/walrus-registry/internal/domain"
)

// BlobBackend stores and resolves blob payloads. Implementations differ in
// where the bytes live; callers only keep the returned handle.
type BlobBackend interface {
	// Mode reports which kind of handle this backend produces.
	Mode() domain.StorageMode

	// Put stores data and returns a handle that resolves back to it.
	Put(ctx context.Context, data []byte) (domain.BlobHandle, error)

	// Get resolves a handle produced by Put to the original bytes.
	Get(ctx context.Context, handle domain.BlobHandle) ([]byte, error)
}

// BlobStore defines the contract for upload session and blob metadata persistence.
type BlobStore interface {
	// CreateUpload inserts a new Open record.
	CreateUpload(ctx context.Context, record *domain.BlobRecord) error

	// GetUpload returns the record of a session, or domain.ErrSessionNotFound.
	GetUpload(ctx context.Context, sessionID string) (*domain.BlobRecord, error)

	// FinalizeUpload records digest, length and handle in a single
	// conditional write. It only succeeds while the session is still Open
	// under record.Name; otherwise it returns domain.ErrSessionNotFound.
	FinalizeUpload(ctx context.Context, record *domain.BlobRecord) error

	// FindBlob returns the newest finalized record for (name, digest), or domain.ErrNotFound.
	FindBlob(ctx context.Context, name, digest string) (*domain.BlobRecord, error)

	// StatBlob is FindBlob without loading the stored payload.
	StatBlob(ctx context.Context, name, digest string) (domain.BlobDescriptor, error)
}

// ManifestStore defines the contract for manifest persistence.
type ManifestStore interface {
	// UpsertManifest inserts or replaces the content stored under (name, reference).
	UpsertManifest(ctx context.Context, name, reference string, content []byte) error

	// GetManifest returns the manifest stored under (name, reference), or domain.ErrNotFound.
	GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error)

	// ListReferences returns every reference stored for name, sorted ascending.
	ListReferences(ctx context.Context, name string) ([]string, error)

	// ListRepositories returns all repository names that have a manifest.
	ListRepositories(ctx context.Context) ([]string, error)
}
