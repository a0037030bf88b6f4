// Package journal persists every canonical error to a local SQLite database
// so failures remain inspectable offline. The store opens lazily on first
// use and degrades to no-ops when it cannot open; journaling must never
// throw or block the caller's main path.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	errpipeline "github.com/blackwell-systems/err-pipeline"
)

// schemaVersion is bumped only when the entries table changes shape.
const schemaVersion = 1

// defaultCapacity bounds the journal; the oldest entries are evicted once
// the limit is exceeded. Unbounded growth under heavy error volume is a
// resource leak, not a feature.
const defaultCapacity = 1000

// Entry is one journaled occurrence. Entries are append-only; they are
// removed only by Clear or capacity eviction.
type Entry struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Error     *errpipeline.Error `json:"error"`
	Context   string             `json:"context,omitempty"`
}

// Config configures the journal.
type Config struct {
	Path     string // SQLite database file
	Capacity int    // max retained entries (0 = default 1000)
}

// Journal is the durable local audit log. Safe for concurrent use.
type Journal struct {
	mu          sync.Mutex
	path        string
	capacity    int
	db          *sql.DB
	unavailable bool
}

// New creates a journal over the database at cfg.Path. The database is not
// opened until the first operation.
func New(cfg Config) *Journal {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Journal{path: cfg.Path, capacity: capacity}
}

// ensure opens and migrates the database once. On failure the journal marks
// itself unavailable and every operation becomes a no-op.
func (j *Journal) ensure() *sql.DB {
	if j.db != nil || j.unavailable {
		return j.db
	}
	if j.path == "" {
		j.unavailable = true
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o750); err != nil {
		j.unavailable = true
		return nil
	}
	db, err := sql.Open("sqlite", j.path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		j.unavailable = true
		return nil
	}
	if err := migrate(db); err != nil {
		db.Close()
		j.unavailable = true
		return nil
	}
	j.db = db
	return db
}

// migrate is the upgrade hook: it creates the entries table when absent and
// records the schema version.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id         TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			error_json TEXT NOT NULL,
			context    TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

// Append stores e with optional free-form context. Non-canonical values are
// completed with the generic kind first so every entry is schema-valid.
// Append never fails the caller's main path: when the store is unavailable
// it returns nil having done nothing.
func (j *Journal) Append(ctx context.Context, e *errpipeline.Error, note string) error {
	if e == nil {
		e = errpipeline.New(errpipeline.KindUnknown, "")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	db := j.ensure()
	if db == nil {
		return nil
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("serialize error: %w", err)
	}

	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		"INSERT INTO entries (id, created_at, error_json, context) VALUES (?, ?, ?, ?)",
		id, time.Now().UTC(), string(payload), note,
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}

	// Retention: keep the newest entries up to capacity.
	_, err = db.ExecContext(ctx, `
		DELETE FROM entries WHERE id NOT IN (
			SELECT id FROM entries ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`, j.capacity)
	if err != nil {
		return fmt.Errorf("evict entries: %w", err)
	}
	return nil
}

// List returns all retained entries, oldest first. An unavailable store
// yields an empty list and no error.
func (j *Journal) List(ctx context.Context) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	db := j.ensure()
	if db == nil {
		return nil, nil
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, created_at, error_json, context FROM entries ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			errorJSON string
		)
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &errorJSON, &entry.Context); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		// Tolerant decode: entries referencing retired kinds still render.
		var ce errpipeline.Error
		if json.Unmarshal([]byte(errorJSON), &ce) == nil {
			entry.Error = &ce
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear removes every entry. No-op when the store is unavailable.
func (j *Journal) Clear(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	db := j.ensure()
	if db == nil {
		return nil
	}
	_, err := db.ExecContext(ctx, "DELETE FROM entries")
	return err
}

// Export serializes the full journal to JSON for diagnostics tooling.
// An unavailable store exports an empty list.
func (j *Journal) Export(ctx context.Context) (string, error) {
	entries, err := j.List(ctx)
	if err != nil {
		return "", err
	}
	if entries == nil {
		entries = []Entry{}
	}
	out, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("export entries: %w", err)
	}
	return string(out), nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	j.unavailable = true
	return err
}
