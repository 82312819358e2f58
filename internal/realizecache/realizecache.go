// Package realizecache persists realizeString keys (the canonical
// monomorphization key produced by typesystem.RealizeString) to a
// SQLite-backed cache, the way a codegen backend would to avoid
// re-lowering the same instantiation twice across compiler runs.
package realizecache

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Cache wraps a SQLite connection holding one row per distinct
// realizeString key ever seen.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a realize-string cache at dsn.
// Pass ":memory:" for a scratch, process-local cache.
func Open(dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("realizecache: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("realizecache: ping: %w", err)
	}
	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) migrate() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS realized_types (
			key         TEXT PRIMARY KEY,
			source_count INTEGER NOT NULL DEFAULT 0,
			session_id  TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("realizecache: migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Metadata is the monomorphization bookkeeping a codegen backend would
// keep per realizeString key: how many distinct sites in the program
// realized to the same key (SourceCount), and which run first recorded
// it (SessionID, a google/uuid tagging one cmd/typecore invocation).
type Metadata struct {
	SourceCount int
	SessionID   uuid.UUID
}

// Put records one more occurrence of key under sessionID, creating the
// row on first sight and otherwise incrementing SourceCount while
// leaving the original SessionID untouched — SourceCount tracks how
// many call sites realized to this key, not how many sessions saw it.
func (c *Cache) Put(key string, sessionID uuid.UUID) error {
	_, err := c.db.Exec(`
		INSERT INTO realized_types (key, source_count, session_id)
		VALUES (?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET source_count = source_count + 1
	`, key, sessionID.String())
	if err != nil {
		return fmt.Errorf("realizecache: put: %w", err)
	}
	return nil
}

// Get reports the bookkeeping for key, if it has ever been seen.
func (c *Cache) Get(key string) (Metadata, bool, error) {
	row := c.db.QueryRow(`SELECT source_count, session_id FROM realized_types WHERE key = ?`, key)
	var m Metadata
	var sessionID string
	if err := row.Scan(&m.SourceCount, &sessionID); err != nil {
		if err == sql.ErrNoRows {
			return Metadata{}, false, nil
		}
		return Metadata{}, false, fmt.Errorf("realizecache: get: %w", err)
	}
	parsed, err := uuid.Parse(sessionID)
	if err != nil {
		return Metadata{}, false, fmt.Errorf("realizecache: get: stored session id: %w", err)
	}
	m.SessionID = parsed
	return m, true, nil
}
