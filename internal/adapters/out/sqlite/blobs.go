package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
	"github.com/bnema/walrus-registry/internal/domain"
)

var _ out.BlobStore = (*BlobStore)(nil)

const blobColumns = `uuid, name, state, digest, content_length, storage_mode, data, codec, external_id, created_at, finalized_at`

// BlobStore persists upload sessions and finalized blob records.
type BlobStore struct {
	db  *DB
	log zerowrap.Logger
}

// NewBlobStore creates a blob store on db.
func NewBlobStore(db *DB, log zerowrap.Logger) *BlobStore {
	return &BlobStore{db: db, log: log}
}

// CreateUpload inserts an Open session record.
func (s *BlobStore) CreateUpload(ctx context.Context, record *domain.BlobRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return s.db.do(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO blobs (uuid, name, state, created_at) VALUES (?, ?, ?, ?)`,
			record.SessionID, record.Name, string(domain.UploadStateOpen), formatTime(createdAt),
		)
		if err != nil {
			return storeErr("insert upload", err)
		}
		return nil
	})
}

// GetUpload returns the session record for sessionID.
func (s *BlobStore) GetUpload(ctx context.Context, sessionID string) (*domain.BlobRecord, error) {
	var record *domain.BlobRecord
	err := s.db.do(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, `SELECT `+blobColumns+` FROM blobs WHERE uuid = ?`, sessionID)
		r, err := scanBlob(row)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		if err != nil {
			return storeErr("select upload", err)
		}
		record = r
		return nil
	})
	return record, err
}

// FinalizeUpload moves an Open session to Finalized. Digest, length and
// handle are written by one statement guarded on the Open state, so
// concurrent finalizers cannot interleave and only the first commit wins.
func (s *BlobStore) FinalizeUpload(ctx context.Context, record *domain.BlobRecord) error {
	finalizedAt := record.FinalizedAt
	if finalizedAt.IsZero() {
		finalizedAt = time.Now()
	}

	// Delegated records keep data NULL.
	var data any
	if record.Handle.Mode == domain.StorageModeInline {
		inline := record.Handle.Data
		if inline == nil {
			inline = []byte{}
		}
		data = inline
	}

	return s.db.do(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, `
UPDATE blobs
   SET state = ?, digest = ?, content_length = ?, storage_mode = ?, data = ?, codec = ?,
       external_id = ?, finalized_at = ?
 WHERE uuid = ? AND name = ? AND state = ?`,
			string(domain.UploadStateFinalized),
			record.Digest,
			record.Length,
			string(record.Handle.Mode),
			data,
			nullString(record.Handle.Codec),
			nullString(record.Handle.ExternalID),
			formatTime(finalizedAt),
			record.SessionID,
			record.Name,
			string(domain.UploadStateOpen),
		)
		if err != nil {
			return storeErr("finalize upload", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return storeErr("finalize upload", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s is not an open session for %s", domain.ErrSessionNotFound, record.SessionID, record.Name)
		}

		s.log.Debug().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "sqlite").
			Str("uuid", record.SessionID).
			Str("digest", record.Digest).
			Int64(zerowrap.FieldSize, record.Length).
			Str("storage_mode", string(record.Handle.Mode)).
			Msg("upload finalized")
		return nil
	})
}

// FindBlob returns the most recently finalized record for (name, digest).
func (s *BlobStore) FindBlob(ctx context.Context, name, digest string) (*domain.BlobRecord, error) {
	var record *domain.BlobRecord
	err := s.db.do(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, `
SELECT `+blobColumns+`
  FROM blobs
 WHERE name = ? AND digest = ? AND state = ?
 ORDER BY finalized_at DESC, rowid DESC
 LIMIT 1`,
			name, digest, string(domain.UploadStateFinalized),
		)
		r, err := scanBlob(row)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: blob %s in %s", domain.ErrNotFound, digest, name)
		}
		if err != nil {
			return storeErr("select blob", err)
		}
		record = r
		return nil
	})
	return record, err
}

// StatBlob returns digest and length for (name, digest) without reading the payload.
func (s *BlobStore) StatBlob(ctx context.Context, name, digest string) (domain.BlobDescriptor, error) {
	var desc domain.BlobDescriptor
	err := s.db.do(ctx, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx, `
SELECT digest, content_length
  FROM blobs
 WHERE name = ? AND digest = ? AND state = ?
 ORDER BY finalized_at DESC, rowid DESC
 LIMIT 1`,
			name, digest, string(domain.UploadStateFinalized),
		).Scan(&desc.Digest, &desc.Length)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: blob %s in %s", domain.ErrNotFound, digest, name)
		}
		if err != nil {
			return storeErr("stat blob", err)
		}
		return nil
	})
	return desc, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlob(row rowScanner) (*domain.BlobRecord, error) {
	var (
		r           domain.BlobRecord
		state       string
		digest      sql.NullString
		length      sql.NullInt64
		mode        sql.NullString
		data        []byte
		codec       sql.NullString
		externalID  sql.NullString
		createdAt   string
		finalizedAt sql.NullString
	)

	if err := row.Scan(
		&r.SessionID, &r.Name, &state, &digest, &length, &mode, &data, &codec, &externalID,
		&createdAt, &finalizedAt,
	); err != nil {
		return nil, err
	}

	r.State = domain.UploadState(state)
	r.Digest = digest.String
	r.Length = length.Int64
	r.CreatedAt = parseTime(createdAt)
	if finalizedAt.Valid {
		r.FinalizedAt = parseTime(finalizedAt.String)
	}

	if mode.Valid {
		r.Handle = domain.BlobHandle{
			Mode:       domain.StorageMode(mode.String),
			Codec:      codec.String,
			ExternalID: externalID.String,
		}
		if r.Handle.Mode == domain.StorageModeInline {
			r.Handle.Data = data
			if r.Handle.Data == nil {
				r.Handle.Data = []byte{}
			}
		}
	}

	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
