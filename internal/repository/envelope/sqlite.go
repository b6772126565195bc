package envelope

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"botilleria/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS auth_envelopes (
    visitor_id TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    updated_at INTEGER NOT NULL
)`

// Open opens (creating if needed) the local sqlite file backing the
// envelope store.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("session db path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

func (r *sqliteRepo) Load(ctx context.Context, visitorID string) ([]byte, error) {
	const q = `SELECT payload FROM auth_envelopes WHERE visitor_id = ?`
	var payload []byte
	err := r.db.QueryRowContext(ctx, q, visitorID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *sqliteRepo) Save(ctx context.Context, visitorID string, payload []byte) error {
	const q = `
INSERT INTO auth_envelopes (visitor_id, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(visitor_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
`
	_, err := r.db.ExecContext(ctx, q, visitorID, payload, time.Now().UTC().UnixMilli())
	return err
}
