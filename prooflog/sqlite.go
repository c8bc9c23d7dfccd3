package prooflog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store keeps proof logs in a SQLite database. Use ":memory:" as the
// path for an ephemeral store.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) a proof log database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS entries (
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		directive TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		ok INTEGER NOT NULL,
		PRIMARY KEY (session_id, seq),
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginSession creates a new session record and returns its id.
func (s *Store) BeginSession() (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// Append records one entry.
func (s *Store) Append(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (session_id, seq, timestamp, directive, input, output, ok)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Session, e.Seq, e.Timestamp.UTC(), e.Directive, e.Input, e.Output, e.OK,
	)
	return err
}

// Entries returns a session's entries in sequence order.
func (s *Store) Entries(sessionID string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, seq, timestamp, directive, input, output, ok
		 FROM entries WHERE session_id = ? ORDER BY seq`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Session, &e.Seq, &e.Timestamp,
			&e.Directive, &e.Input, &e.Output, &e.OK); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Sessions lists recorded sessions, most recent first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT sessions.id, sessions.started_at, COUNT(entries.seq)
		 FROM sessions LEFT JOIN entries ON entries.session_id = sessions.id
		 GROUP BY sessions.id ORDER BY sessions.started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &sess.Entries); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
