package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists one row per session in a single session_state
// table, migrated at Open() the way stadam23-Eve-flipper's internal/db
// tracks a schema_version row.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite file at path and runs
// migrations, grounded in the teacher pack's sql.Open("sqlite", ...)
// pragma idiom.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, newError(KindInit, "open", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, newError(KindInit, "ping", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, newError(KindInit, "migrate", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	s.db.QueryRow(`SELECT version FROM schema_version ORDER BY version DESC LIMIT 1`).Scan(&version)

	if version < 1 {
		_, err := s.db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS session_state (
				session_id TEXT PRIMARY KEY,
				version    INTEGER NOT NULL DEFAULT 0,
				body       TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

// Load returns the raw JSON body stored for sessionID, or found=false if
// no row exists.
func (s *SQLiteStore) Load(sessionID string) ([]byte, bool, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM session_state WHERE session_id = ?`, sessionID).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, newError(KindRead, "load", err)
	}
	return []byte(body), true, nil
}

// Save upserts the session's serialized body by session_id, the same
// INSERT ... ON CONFLICT DO UPDATE shape the teacher pack uses for
// upsert-by-key writes.
func (s *SQLiteStore) Save(sessionID string, raw []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO session_state (session_id, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, sessionID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return newError(KindWrite, "save", err)
	}
	return nil
}

// Exists reports whether sessionID has a stored row.
func (s *SQLiteStore) Exists(sessionID string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM session_state WHERE session_id = ?`, sessionID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, newError(KindRead, "exists", err)
	}
	return true, nil
}

// Delete removes sessionID's row, if present.
func (s *SQLiteStore) Delete(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM session_state WHERE session_id = ?`, sessionID); err != nil {
		return newError(KindWrite, "delete", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ StateStore = (*SQLiteStore)(nil)
