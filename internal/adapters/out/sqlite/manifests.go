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

var _ out.ManifestStore = (*ManifestStore)(nil)

// ManifestStore persists manifests keyed by (name, reference).
type ManifestStore struct {
	db  *DB
	log zerowrap.Logger
	now func() time.Time
}

// NewManifestStore creates a manifest store on db.
func NewManifestStore(db *DB, log zerowrap.Logger) *ManifestStore {
	return &ManifestStore{db: db, log: log, now: time.Now}
}

// UpsertManifest inserts the manifest or replaces the content of an existing one.
// created_at is kept from the first write.
func (s *ManifestStore) UpsertManifest(ctx context.Context, name, reference string, content []byte) error {
	if content == nil {
		content = []byte{}
	}
	now := formatTime(s.now())

	return s.db.do(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `
INSERT INTO manifests (name, reference, content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name, reference) DO UPDATE SET
  content = excluded.content,
  updated_at = excluded.updated_at`,
			name, reference, content, now, now,
		)
		if err != nil {
			return storeErr("upsert manifest", err)
		}

		s.log.Debug().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "sqlite").
			Str("name", name).
			Str("reference", reference).
			Int(zerowrap.FieldSize, len(content)).
			Msg("manifest stored")
		return nil
	})
}

// GetManifest returns the manifest stored under (name, reference).
func (s *ManifestStore) GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	var manifest *domain.Manifest
	err := s.db.do(ctx, func(db *sql.DB) error {
		var (
			m         domain.Manifest
			createdAt string
			updatedAt string
		)
		err := db.QueryRowContext(ctx,
			`SELECT name, reference, content, created_at, updated_at FROM manifests WHERE name = ? AND reference = ?`,
			name, reference,
		).Scan(&m.Name, &m.Reference, &m.Content, &createdAt, &updatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: manifest %s:%s", domain.ErrNotFound, name, reference)
		}
		if err != nil {
			return storeErr("select manifest", err)
		}

		if m.Content == nil {
			m.Content = []byte{}
		}
		m.CreatedAt = parseTime(createdAt)
		m.UpdatedAt = parseTime(updatedAt)
		manifest = &m
		return nil
	})
	return manifest, err
}

// ListReferences returns the references stored for name in ascending order.
func (s *ManifestStore) ListReferences(ctx context.Context, name string) ([]string, error) {
	return s.listStrings(ctx, "list references",
		`SELECT reference FROM manifests WHERE name = ? ORDER BY reference`, name)
}

// ListRepositories returns the distinct repository names in ascending order.
func (s *ManifestStore) ListRepositories(ctx context.Context) ([]string, error) {
	return s.listStrings(ctx, "list repositories",
		`SELECT DISTINCT name FROM manifests ORDER BY name`)
}

func (s *ManifestStore) listStrings(ctx context.Context, op, query string, args ...any) ([]string, error) {
	values := []string{}
	err := s.db.do(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return storeErr(op, err)
		}
		defer rows.Close()

		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return storeErr(op, err)
			}
			values = append(values, v)
		}
		if err := rows.Err(); err != nil {
			return storeErr(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
