// Package history keeps a write-only SQLite transcript of chat messages for operators.
// Sessions never read it back; a closed session is gone for good.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/glebarez/go-sqlite"

	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/session"
)

// Store appends transcript records to a SQLite database.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (and creates if needed) the transcript database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(10000)")
	if err != nil {
		return nil, fmt.Errorf("open transcript db: %w", err)
	}
	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS messages (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        message_id TEXT NOT NULL,
        session_id TEXT NOT NULL,
        origin TEXT NOT NULL,
        content TEXT NOT NULL,
        created_at DATETIME NOT NULL
    );`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create messages table: %w", err)
	}
	logger.L.Info("sqlite transcript DB initialized", "path", path)
	return &Store{db: db}, nil
}

// Record implements session.Recorder.
func (s *Store) Record(ctx context.Context, sessionID string, msg session.Message) error {
	return s.Save(ctx, Record{
		MessageID: msg.ID,
		SessionID: sessionID,
		Origin:    string(msg.Origin),
		Content:   msg.Text,
		CreatedAt: msg.SentAt,
	})
}

// Save inserts one transcript record.
func (s *Store) Save(ctx context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, origin, content, created_at) VALUES (?,?,?,?,?);`,
		r.MessageID, r.SessionID, r.Origin, r.Content, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("store message %s: %w", r.MessageID, err)
	}
	return nil
}

// List returns all records of a session in insertion order.
func (s *Store) List(ctx context.Context, sessionID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, message_id, session_id, origin, content, created_at FROM messages WHERE session_id = ? ORDER BY id ASC;`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.MessageID, &r.SessionID, &r.Origin, &r.Content, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
