package in

import (
	"context"

	"github.com/bnema/walrus-registry/internal/domain"
)

// RegistryService defines the contract for artifact registry operations.
type RegistryService interface {
	// Upload operations
	BeginUpload(ctx context.Context, name string) (string, error)
	CompleteUpload(ctx context.Context, sessionID, name string, data []byte) (domain.BlobDescriptor, error)
	GetUpload(ctx context.Context, sessionID string) (*domain.BlobRecord, error)

	// Blob operations
	GetBlob(ctx context.Context, name, digest string) ([]byte, error)
	HeadBlob(ctx context.Context, name, digest string) (bool, error)
	StatBlob(ctx context.Context, name, digest string) (domain.BlobDescriptor, error)

	// Manifest operations
	PutManifest(ctx context.Context, name, reference string, content []byte) error
	GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error)
	HeadManifest(ctx context.Context, name, reference string) (domain.BlobDescriptor, error)

	// Tag operations
	ListReferences(ctx context.Context, name string) ([]string, error)
	ListRepositories(ctx context.Context) ([]string, error)
}
