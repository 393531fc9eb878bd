package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
	"github.com/bnema/walrus-registry/pkg/digest"
)

// BlobRepository runs the upload session lifecycle on top of a metadata
// store and the active blob backend.
type BlobRepository struct {
	store   out.BlobStore
	backend out.BlobBackend
	newID   func() string
	now     func() time.Time
}

// NewBlobRepository creates a blob repository.
func NewBlobRepository(store out.BlobStore, backend out.BlobBackend) *BlobRepository {
	return &BlobRepository{
		store:   store,
		backend: backend,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// BeginUpload opens a new session for name and returns its id.
func (r *BlobRepository) BeginUpload(ctx context.Context, name string) (string, error) {
	id := r.newID()
	if err := r.store.CreateUpload(ctx, &domain.BlobRecord{
		SessionID: id,
		Name:      name,
		State:     domain.UploadStateOpen,
		CreatedAt: r.now(),
	}); err != nil {
		return "", err
	}
	return id, nil
}

// CompleteUpload finalizes an open session with data. The digest is always
// computed here; the backend write happens before the conditional record
// update, and a session that is finalized by another caller in between
// makes this call fail with domain.ErrSessionNotFound.
func (r *BlobRepository) CompleteUpload(ctx context.Context, sessionID, name string, data []byte) (domain.BlobDescriptor, error) {
	session, err := r.store.GetUpload(ctx, sessionID)
	if err != nil {
		return domain.BlobDescriptor{}, err
	}
	if session.Name != name {
		return domain.BlobDescriptor{}, fmt.Errorf("%w: session %s belongs to another repository", domain.ErrSessionNotFound, sessionID)
	}
	if session.IsFinalized() {
		return domain.BlobDescriptor{}, fmt.Errorf("%w: session %s is already finalized", domain.ErrSessionNotFound, sessionID)
	}

	desc := domain.BlobDescriptor{
		Digest: digest.FromBytes(data),
		Length: int64(len(data)),
	}

	handle, err := r.backend.Put(ctx, data)
	if err != nil {
		return domain.BlobDescriptor{}, err
	}

	// The payload is already stored; record it even if the caller went away.
	if err := r.store.FinalizeUpload(context.WithoutCancel(ctx), &domain.BlobRecord{
		SessionID:   sessionID,
		Name:        name,
		State:       domain.UploadStateFinalized,
		Digest:      desc.Digest,
		Length:      desc.Length,
		Handle:      handle,
		FinalizedAt: r.now(),
	}); err != nil {
		return domain.BlobDescriptor{}, err
	}

	return desc, nil
}

// GetUpload returns the record of a session.
func (r *BlobRepository) GetUpload(ctx context.Context, sessionID string) (*domain.BlobRecord, error) {
	return r.store.GetUpload(ctx, sessionID)
}

// GetBlob returns the bytes of the blob stored under (name, digest).
func (r *BlobRepository) GetBlob(ctx context.Context, name, dgst string) ([]byte, error) {
	record, err := r.store.FindBlob(ctx, name, dgst)
	if err != nil {
		return nil, err
	}
	return r.backend.Get(ctx, record.Handle)
}

// HeadBlob reports whether a blob is stored under (name, digest).
func (r *BlobRepository) HeadBlob(ctx context.Context, name, dgst string) (bool, error) {
	if _, err := r.store.StatBlob(ctx, name, dgst); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// StatBlob returns digest and length of the blob stored under (name, digest).
func (r *BlobRepository) StatBlob(ctx context.Context, name, dgst string) (domain.BlobDescriptor, error) {
	return r.store.StatBlob(ctx, name, dgst)
}
