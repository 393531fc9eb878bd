package registry

import (
	"context"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
	"github.com/bnema/walrus-registry/pkg/digest"
	"github.com/bnema/walrus-registry/pkg/manifest"
)

// ManifestRepository stores manifests under (name, reference) keys.
// Content is opaque; digests are derived from it on demand.
type ManifestRepository struct {
	store out.ManifestStore
}

// NewManifestRepository creates a manifest repository.
func NewManifestRepository(store out.ManifestStore) *ManifestRepository {
	return &ManifestRepository{store: store}
}

// PutManifest creates or replaces the manifest under (name, reference).
func (r *ManifestRepository) PutManifest(ctx context.Context, name, reference string, content []byte) error {
	return r.store.UpsertManifest(ctx, name, reference, content)
}

// GetManifest returns the manifest under (name, reference) with its media type filled in.
func (r *ManifestRepository) GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	m, err := r.store.GetManifest(ctx, name, reference)
	if err != nil {
		return nil, err
	}
	m.MediaType = manifest.MediaType(m.Content)
	return m, nil
}

// HeadManifest returns digest and length of the current content.
func (r *ManifestRepository) HeadManifest(ctx context.Context, name, reference string) (domain.BlobDescriptor, error) {
	m, err := r.store.GetManifest(ctx, name, reference)
	if err != nil {
		return domain.BlobDescriptor{}, err
	}
	return domain.BlobDescriptor{
		Digest: digest.FromBytes(m.Content),
		Length: int64(len(m.Content)),
	}, nil
}

// ListReferences returns the references stored for name, sorted ascending.
func (r *ManifestRepository) ListReferences(ctx context.Context, name string) ([]string, error) {
	refs, err := r.store.ListReferences(ctx, name)
	if err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []string{}
	}
	return refs, nil
}

// ListRepositories returns every repository name that has a manifest.
func (r *ManifestRepository) ListRepositories(ctx context.Context) ([]string, error) {
	repos, err := r.store.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []string{}
	}
	return repos, nil
}
