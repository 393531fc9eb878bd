package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/walrus-registry/internal/domain"
)

const helloDigest = "sha256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func newOpenUpload(t *testing.T, store *BlobStore, id, name string) {
	t.Helper()
	require.NoError(t, store.CreateUpload(context.Background(), &domain.BlobRecord{
		SessionID: id,
		Name:      name,
	}))
}

func TestBlobStore_CreateAndGetUpload(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()

	newOpenUpload(t, store, "u-1", "myapp")

	record, err := store.GetUpload(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", record.SessionID)
	assert.Equal(t, "myapp", record.Name)
	assert.Equal(t, domain.UploadStateOpen, record.State)
	assert.False(t, record.IsFinalized())
	assert.Empty(t, record.Digest)
	assert.Zero(t, record.Length)
	assert.Empty(t, record.Handle.Mode)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestBlobStore_GetUpload_Missing(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())

	_, err := store.GetUpload(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBlobStore_CreateUpload_DuplicateID(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	newOpenUpload(t, store, "u-1", "myapp")

	err := store.CreateUpload(context.Background(), &domain.BlobRecord{SessionID: "u-1", Name: "other"})
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
}

func TestBlobStore_FinalizeInline(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-1", "myapp")

	err := store.FinalizeUpload(ctx, &domain.BlobRecord{
		SessionID: "u-1",
		Name:      "myapp",
		Digest:    helloDigest,
		Length:    5,
		Handle:    domain.BlobHandle{Mode: domain.StorageModeInline, Data: []byte("hello")},
	})
	require.NoError(t, err)

	record, err := store.GetUpload(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, record.IsFinalized())
	assert.Equal(t, helloDigest, record.Digest)
	assert.Equal(t, int64(5), record.Length)
	assert.Equal(t, domain.StorageModeInline, record.Handle.Mode)
	assert.Equal(t, []byte("hello"), record.Handle.Data)
	assert.Empty(t, record.Handle.ExternalID)
	assert.False(t, record.FinalizedAt.IsZero())
}

func TestBlobStore_FinalizeDelegated(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-1", "myapp")

	require.NoError(t, store.FinalizeUpload(ctx, &domain.BlobRecord{
		SessionID: "u-1",
		Name:      "myapp",
		Digest:    helloDigest,
		Length:    5,
		Handle:    domain.BlobHandle{Mode: domain.StorageModeDelegated, ExternalID: "blob-abc"},
	}))

	record, err := store.FindBlob(ctx, "myapp", helloDigest)
	require.NoError(t, err)
	assert.Equal(t, domain.StorageModeDelegated, record.Handle.Mode)
	assert.Equal(t, "blob-abc", record.Handle.ExternalID)
	assert.Nil(t, record.Handle.Data)
}

func TestBlobStore_FinalizeEmptyPayload(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-1", "myapp")

	empty := "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	require.NoError(t, store.FinalizeUpload(ctx, &domain.BlobRecord{
		SessionID: "u-1",
		Name:      "myapp",
		Digest:    empty,
		Handle:    domain.BlobHandle{Mode: domain.StorageModeInline},
	}))

	record, err := store.FindBlob(ctx, "myapp", empty)
	require.NoError(t, err)
	assert.NotNil(t, record.Handle.Data)
	assert.Empty(t, record.Handle.Data)
	assert.Zero(t, record.Length)
}

func TestBlobStore_FinalizeRejectsNonOpenSessions(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-1", "myapp")

	final := &domain.BlobRecord{
		SessionID: "u-1",
		Name:      "myapp",
		Digest:    helloDigest,
		Length:    5,
		Handle:    domain.BlobHandle{Mode: domain.StorageModeInline, Data: []byte("hello")},
	}

	t.Run("name mismatch", func(t *testing.T) {
		wrong := *final
		wrong.Name = "other"
		err := store.FinalizeUpload(ctx, &wrong)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		record, err := store.GetUpload(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, domain.UploadStateOpen, record.State)
	})

	t.Run("unknown session", func(t *testing.T) {
		missing := *final
		missing.SessionID = "u-404"
		assert.ErrorIs(t, store.FinalizeUpload(ctx, &missing), domain.ErrSessionNotFound)
	})

	t.Run("already finalized", func(t *testing.T) {
		require.NoError(t, store.FinalizeUpload(ctx, final))

		again := *final
		again.Digest = "sha256:" + fmt.Sprintf("%064d", 1)
		again.Handle = domain.BlobHandle{Mode: domain.StorageModeInline, Data: []byte("other")}
		assert.ErrorIs(t, store.FinalizeUpload(ctx, &again), domain.ErrSessionNotFound)

		record, err := store.GetUpload(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, helloDigest, record.Digest)
		assert.Equal(t, []byte("hello"), record.Handle.Data)
	})
}

func TestBlobStore_ConcurrentFinalize_SingleWinner(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{PoolSize: 8}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-race", "myapp")

	const finalizers = 16
	var (
		wins   atomic.Int32
		losses atomic.Int32
		winner atomic.Value
	)

	payloads := make(map[string][]byte, finalizers)
	for i := 0; i < finalizers; i++ {
		payloads[fmt.Sprintf("sha256:%064x", i)] = []byte(fmt.Sprintf("payload-%02d", i))
	}

	var g errgroup.Group
	for digest, payload := range payloads {
		g.Go(func() error {
			err := store.FinalizeUpload(ctx, &domain.BlobRecord{
				SessionID: "u-race",
				Name:      "myapp",
				Digest:    digest,
				Length:    int64(len(payload)),
				Handle:    domain.BlobHandle{Mode: domain.StorageModeInline, Data: payload},
			})
			switch {
			case err == nil:
				wins.Add(1)
				winner.Store(digest)
				return nil
			case errors.Is(err, domain.ErrSessionNotFound):
				losses.Add(1)
				return nil
			default:
				return err
			}
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(finalizers-1), losses.Load())

	record, err := store.GetUpload(ctx, "u-race")
	require.NoError(t, err)
	assert.Equal(t, winner.Load(), record.Digest)

	assert.Equal(t, payloads[record.Digest], record.Handle.Data)
	assert.Equal(t, int64(len(record.Handle.Data)), record.Length)
}

func TestBlobStore_FindBlob_NewestFinalizationWins(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"u-old", "u-new"} {
		newOpenUpload(t, store, id, "myapp")
		require.NoError(t, store.FinalizeUpload(ctx, &domain.BlobRecord{
			SessionID:   id,
			Name:        "myapp",
			Digest:      helloDigest,
			Length:      5,
			Handle:      domain.BlobHandle{Mode: domain.StorageModeDelegated, ExternalID: "ext-" + id},
			FinalizedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	record, err := store.FindBlob(ctx, "myapp", helloDigest)
	require.NoError(t, err)
	assert.Equal(t, "u-new", record.SessionID)
	assert.Equal(t, "ext-u-new", record.Handle.ExternalID)
}

func TestBlobStore_FindAndStatBlob_ScopedByName(t *testing.T) {
	store := NewBlobStore(openTestDB(t, Config{}), testLogger())
	ctx := context.Background()
	newOpenUpload(t, store, "u-1", "myapp")
	newOpenUpload(t, store, "u-2", "myapp")

	require.NoError(t, store.FinalizeUpload(ctx, &domain.BlobRecord{
		SessionID: "u-1",
		Name:      "myapp",
		Digest:    helloDigest,
		Length:    5,
		Handle:    domain.BlobHandle{Mode: domain.StorageModeInline, Data: []byte("hello")},
	}))

	desc, err := store.StatBlob(ctx, "myapp", helloDigest)
	require.NoError(t, err)
	assert.Equal(t, domain.BlobDescriptor{Digest: helloDigest, Length: 5}, desc)

	_, err = store.FindBlob(ctx, "otherapp", helloDigest)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.StatBlob(ctx, "otherapp", helloDigest)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Open sessions are never visible as blobs.
	_, err = store.FindBlob(ctx, "myapp", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
