package registry

import (
	"context"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/walrus-registry/internal/boundaries/out/mocks"
	"github.com/bnema/walrus-registry/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

type serviceMocks struct {
	blobs     *mocks.MockBlobStore
	manifests *mocks.MockManifestStore
	backend   *mocks.MockBlobBackend
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		blobs:     mocks.NewMockBlobStore(t),
		manifests: mocks.NewMockManifestStore(t),
		backend:   mocks.NewMockBlobBackend(t),
	}
	return NewService(m.blobs, m.manifests, m.backend), m
}

func TestService_UploadAndFetchHello(t *testing.T) {
	svc, m := newTestService(t)
	ctx := testContext()

	var stored *domain.BlobRecord
	m.blobs.EXPECT().CreateUpload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.BlobRecord) error {
			stored = r
			return nil
		})
	m.blobs.EXPECT().GetUpload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.BlobRecord, error) {
			require.Equal(t, stored.SessionID, id)
			return stored, nil
		})
	m.backend.EXPECT().Put(mock.Anything, []byte("hello")).
		Return(domain.BlobHandle{Mode: domain.StorageModeInline, Data: []byte("hello")}, nil)
	m.blobs.EXPECT().FinalizeUpload(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.BlobRecord) error {
			stored = r
			return nil
		})

	id, err := svc.BeginUpload(ctx, "myapp")
	require.NoError(t, err)
	assert.Len(t, id, 36)

	desc, err := svc.CompleteUpload(ctx, id, "myapp", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, helloDigest, desc.Digest)
	assert.Equal(t, int64(5), desc.Length)

	m.blobs.EXPECT().FindBlob(mock.Anything, "myapp", helloDigest).Return(stored, nil)
	m.backend.EXPECT().Get(mock.Anything, stored.Handle).Return(stored.Handle.Data, nil)

	data, err := svc.GetBlob(ctx, "myapp", helloDigest)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestService_DistinctSessions(t *testing.T) {
	svc, m := newTestService(t)
	ctx := testContext()

	m.blobs.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(nil).Twice()

	first, err := svc.BeginUpload(ctx, "myapp")
	require.NoError(t, err)
	second, err := svc.BeginUpload(ctx, "myapp")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestService_ErrorsKeepTheirKind(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m serviceMocks)
		call  func(svc *Service) error
		want  error
	}{
		{
			name: "complete unknown session",
			setup: func(m serviceMocks) {
				m.blobs.EXPECT().GetUpload(mock.Anything, "nope").Return(nil, domain.ErrSessionNotFound)
			},
			call: func(svc *Service) error {
				_, err := svc.CompleteUpload(testContext(), "nope", "myapp", nil)
				return err
			},
			want: domain.ErrSessionNotFound,
		},
		{
			name: "begin with exhausted pool",
			setup: func(m serviceMocks) {
				m.blobs.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(domain.ErrResourceUnavailable)
			},
			call: func(svc *Service) error {
				_, err := svc.BeginUpload(testContext(), "myapp")
				return err
			},
			want: domain.ErrResourceUnavailable,
		},
		{
			name: "blob not found",
			setup: func(m serviceMocks) {
				m.blobs.EXPECT().FindBlob(mock.Anything, "myapp", helloDigest).Return(nil, domain.ErrNotFound)
			},
			call: func(svc *Service) error {
				_, err := svc.GetBlob(testContext(), "myapp", helloDigest)
				return err
			},
			want: domain.ErrNotFound,
		},
		{
			name: "external store failure on read",
			setup: func(m serviceMocks) {
				m.blobs.EXPECT().FindBlob(mock.Anything, "myapp", helloDigest).
					Return(&domain.BlobRecord{Handle: domain.BlobHandle{Mode: domain.StorageModeDelegated, ExternalID: "x"}}, nil)
				m.backend.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domain.ErrExternalStoreFailure)
			},
			call: func(svc *Service) error {
				_, err := svc.GetBlob(testContext(), "myapp", helloDigest)
				return err
			},
			want: domain.ErrExternalStoreFailure,
		},
		{
			name: "manifest persistence failure",
			setup: func(m serviceMocks) {
				m.manifests.EXPECT().UpsertManifest(mock.Anything, "myapp", "v1", mock.Anything).Return(domain.ErrPersistenceFailure)
			},
			call: func(svc *Service) error {
				return svc.PutManifest(testContext(), "myapp", "v1", []byte("{}"))
			},
			want: domain.ErrPersistenceFailure,
		},
		{
			name: "manifest not found",
			setup: func(m serviceMocks) {
				m.manifests.EXPECT().GetManifest(mock.Anything, "myapp", "v9").Return(nil, domain.ErrNotFound)
			},
			call: func(svc *Service) error {
				_, err := svc.GetManifest(testContext(), "myapp", "v9")
				return err
			},
			want: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)

			err := tt.call(svc)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_PutManifest_Idempotent(t *testing.T) {
	svc, m := newTestService(t)
	ctx := testContext()
	content := []byte(`{"schemaVersion":2}`)

	m.manifests.EXPECT().UpsertManifest(mock.Anything, "myapp", "v1", content).Return(nil).Twice()
	m.manifests.EXPECT().ListReferences(mock.Anything, "myapp").Return([]string{"v1"}, nil)

	require.NoError(t, svc.PutManifest(ctx, "myapp", "v1", content))
	require.NoError(t, svc.PutManifest(ctx, "myapp", "v1", content))

	refs, err := svc.ListReferences(ctx, "myapp")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, refs)
}

func TestService_HeadManifest(t *testing.T) {
	svc, m := newTestService(t)

	m.manifests.EXPECT().GetManifest(mock.Anything, "myapp", "v1").
		Return(&domain.Manifest{Name: "myapp", Reference: "v1", Content: []byte("hello")}, nil)

	desc, err := svc.HeadManifest(testContext(), "myapp", "v1")

	require.NoError(t, err)
	assert.Equal(t, helloDigest, desc.Digest)
	assert.Equal(t, int64(5), desc.Length)
}

func TestService_HeadBlob_Missing(t *testing.T) {
	svc, m := newTestService(t)

	m.blobs.EXPECT().StatBlob(mock.Anything, "myapp", helloDigest).Return(domain.BlobDescriptor{}, domain.ErrNotFound)

	exists, err := svc.HeadBlob(testContext(), "myapp", helloDigest)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_ListReferences_Empty(t *testing.T) {
	svc, m := newTestService(t)

	m.manifests.EXPECT().ListReferences(mock.Anything, "ghost").Return([]string{}, nil)

	refs, err := svc.ListReferences(testContext(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.NotNil(t, refs)
}

func TestService_ListRepositories(t *testing.T) {
	svc, m := newTestService(t)

	m.manifests.EXPECT().ListRepositories(mock.Anything).Return([]string{"a", "b/c"}, nil)

	repos, err := svc.ListRepositories(testContext())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b/c"}, repos)
}
