// Package store persists player snapshots in a local SQLite database, one
// row per save slot. Snapshots are stored as JSON payloads so the schema
// survives player-state field changes without migrations.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store wraps the save database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations. A single connection is enough: saves are serialized
// by the autosave loop.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping save database: %w", err)
	}

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot upserts the snapshot for a slot.
func (s *Store) SaveSnapshot(ctx context.Context, slot string, snap domain.Snapshot) error {
	if slot == "" {
		return domain.ErrInvalidInput
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	const q = `
		INSERT INTO saves (slot, schema_version, saved_at_ms, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			schema_version = excluded.schema_version,
			saved_at_ms = excluded.saved_at_ms,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, q, slot, snap.SchemaVersion, snap.SavedAtMS, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot for slot %q: %w", slot, err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot for a slot, or
// domain.ErrSnapshotNotFound when the slot has never been saved.
func (s *Store) LoadSnapshot(ctx context.Context, slot string) (domain.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM saves WHERE slot = ?", slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot for slot %q: %w", slot, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot for slot %q: %w", slot, err)
	}
	return snap, nil
}

// Slots lists all saved slots with their last save times.
func (s *Store) Slots(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slot, saved_at_ms FROM saves ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var slot string
		var savedAt int64
		if err := rows.Scan(&slot, &savedAt); err != nil {
			return nil, fmt.Errorf("scan save slot: %w", err)
		}
		out[slot] = savedAt
	}
	return out, rows.Err()
}
