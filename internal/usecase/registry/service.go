// Package registry implements the artifact registry use case.
package registry

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/boundaries/in"
	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
)

var _ in.RegistryService = (*Service)(nil)

// Service implements the RegistryService interface.
type Service struct {
	blobs     *BlobRepository
	manifests *ManifestRepository
}

// NewService creates a new registry service.
func NewService(
	blobStore out.BlobStore,
	manifestStore out.ManifestStore,
	backend out.BlobBackend,
) *Service {
	return &Service{
		blobs:     NewBlobRepository(blobStore, backend),
		manifests: NewManifestRepository(manifestStore),
	}
}

// BeginUpload opens a new upload session.
func (s *Service) BeginUpload(ctx context.Context, name string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "BeginUpload",
		"name":                name,
	})
	log := zerowrap.FromCtx(ctx)

	id, err := s.blobs.BeginUpload(ctx, name)
	if err != nil {
		return "", log.WrapErr(err, "failed to begin blob upload")
	}

	log.Info().Str("uuid", id).Msg("blob upload started")
	return id, nil
}

// CompleteUpload stores data as the content of an open session.
func (s *Service) CompleteUpload(ctx context.Context, sessionID, name string, data []byte) (domain.BlobDescriptor, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CompleteUpload",
		"uuid":                sessionID,
		"name":                name,
		zerowrap.FieldSize:    len(data),
	})
	log := zerowrap.FromCtx(ctx)

	desc, err := s.blobs.CompleteUpload(ctx, sessionID, name, data)
	if err != nil {
		return domain.BlobDescriptor{}, log.WrapErr(err, "failed to complete blob upload")
	}

	log.Info().Str("digest", desc.Digest).Msg("blob upload completed")
	return desc, nil
}

// GetUpload returns the state of an upload session.
func (s *Service) GetUpload(ctx context.Context, sessionID string) (*domain.BlobRecord, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetUpload",
		"uuid":                sessionID,
	})
	log := zerowrap.FromCtx(ctx)

	record, err := s.blobs.GetUpload(ctx, sessionID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get blob upload")
	}
	return record, nil
}

// GetBlob retrieves a blob by repository and digest.
func (s *Service) GetBlob(ctx context.Context, name, digest string) ([]byte, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetBlob",
		"name":                name,
		"digest":              digest,
	})
	log := zerowrap.FromCtx(ctx)

	data, err := s.blobs.GetBlob(ctx, name, digest)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get blob")
	}
	return data, nil
}

// HeadBlob checks if a blob exists.
func (s *Service) HeadBlob(ctx context.Context, name, digest string) (bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "HeadBlob",
		"name":                name,
		"digest":              digest,
	})
	log := zerowrap.FromCtx(ctx)

	exists, err := s.blobs.HeadBlob(ctx, name, digest)
	if err != nil {
		return false, log.WrapErr(err, "failed to check blob")
	}
	return exists, nil
}

// StatBlob returns digest and length of a stored blob.
func (s *Service) StatBlob(ctx context.Context, name, digest string) (domain.BlobDescriptor, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "StatBlob",
		"name":                name,
		"digest":              digest,
	})
	log := zerowrap.FromCtx(ctx)

	desc, err := s.blobs.StatBlob(ctx, name, digest)
	if err != nil {
		return domain.BlobDescriptor{}, log.WrapErr(err, "failed to stat blob")
	}
	return desc, nil
}

// PutManifest stores a manifest.
func (s *Service) PutManifest(ctx context.Context, name, reference string, content []byte) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "PutManifest",
		"name":                name,
		"reference":           reference,
	})
	log := zerowrap.FromCtx(ctx)

	if err := s.manifests.PutManifest(ctx, name, reference, content); err != nil {
		return log.WrapErr(err, "failed to store manifest")
	}

	log.Info().Msg("manifest stored")
	return nil
}

// GetManifest retrieves a manifest by name and reference.
func (s *Service) GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetManifest",
		"name":                name,
		"reference":           reference,
	})
	log := zerowrap.FromCtx(ctx)

	m, err := s.manifests.GetManifest(ctx, name, reference)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get manifest")
	}
	return m, nil
}

// HeadManifest returns digest and length of a stored manifest.
func (s *Service) HeadManifest(ctx context.Context, name, reference string) (domain.BlobDescriptor, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "HeadManifest",
		"name":                name,
		"reference":           reference,
	})
	log := zerowrap.FromCtx(ctx)

	desc, err := s.manifests.HeadManifest(ctx, name, reference)
	if err != nil {
		return domain.BlobDescriptor{}, log.WrapErr(err, "failed to head manifest")
	}
	return desc, nil
}

// ListReferences returns all references for a repository.
func (s *Service) ListReferences(ctx context.Context, name string) ([]string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListReferences",
		"name":                name,
	})
	log := zerowrap.FromCtx(ctx)

	refs, err := s.manifests.ListReferences(ctx, name)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list references")
	}
	return refs, nil
}

// ListRepositories returns all repository names.
func (s *Service) ListRepositories(ctx context.Context) ([]string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListRepositories",
	})
	log := zerowrap.FromCtx(ctx)

	repos, err := s.manifests.ListRepositories(ctx)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list repositories")
	}
	return repos, nil
}
