package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one snapshot row per scope in an embedded SQLite file.
// The authoritative cart lives behind the shop API; this is only the
// best-effort local copy read once at controller hydration, so an embedded
// single-file database is all the persistence this service needs.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
	scope          TEXT PRIMARY KEY,
	schema_version INTEGER NOT NULL,
	payload        BLOB NOT NULL,
	saved_at       TIMESTAMP NOT NULL
);
`

// NewSQLiteStore opens (and creates if needed) the snapshot database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	// Single writer per scope; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the stored payload for a scope. A missing row, or a row
// written under a different schema version, reports found=false; the
// mismatched row is dropped so the next Save starts clean.
func (s *SQLiteStore) Load(ctx context.Context, scope string, schemaVersion int) ([]byte, bool, error) {
	var (
		storedVersion int
		payload       []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT schema_version, payload FROM cart_snapshots WHERE scope = ?`, scope,
	).Scan(&storedVersion, &payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if storedVersion != schemaVersion {
		_ = s.Delete(ctx, scope)
		return nil, false, nil
	}

	return payload, true, nil
}

// Save upserts the snapshot for a scope.
func (s *SQLiteStore) Save(ctx context.Context, scope string, schemaVersion int, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_snapshots (scope, schema_version, payload, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload        = excluded.payload,
			saved_at       = excluded.saved_at`,
		scope, schemaVersion, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Delete removes a scope's snapshot.
func (s *SQLiteStore) Delete(ctx context.Context, scope string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_snapshots WHERE scope = ?`, scope); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// PruneBefore drops snapshots not written since the cutoff. Used by the
// maintenance worker.
func (s *SQLiteStore) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_snapshots WHERE saved_at < ?`, cutoff.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return res.RowsAffected()
}

// HealthCheck verifies the database is reachable.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("snapshot db ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
