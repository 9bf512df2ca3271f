package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grovekit/grove/internal/reason"
)

// SessionStatus represents the status of a reasoning session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
)

// Session represents one reasoning run by one agent.
type Session struct {
	ID         string        `json:"id"`
	Agent      string        `json:"agent"`
	Method     reason.Method `json:"method"`
	Task       string        `json:"task"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at"`
	Status     SessionStatus `json:"status"`
}

// State represents one explored tree node within a session.
type State struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Depth     int       `json:"depth"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// formatTime formats a time.Time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// CreateSession inserts a new active session and returns it.
func (db *DB) CreateSession(agent string, method reason.Method, task string) (*Session, error) {
	s := &Session{
		ID:        uuid.New().String(),
		Agent:     agent,
		Method:    method,
		Task:      task,
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Status:    SessionActive,
	}

	_, err := db.Exec(`
		INSERT INTO sessions (id, agent, method, task, started_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.ID, s.Agent, string(s.Method), s.Task, formatTime(s.StartedAt), string(s.Status))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	return s, nil
}

// FinishSession marks a session completed or failed.
func (db *DB) FinishSession(id string, status SessionStatus) error {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := db.Exec(`
		UPDATE sessions SET status = ?, finished_at = ? WHERE id = ?
	`, string(status), formatTime(now), id)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// RecordState inserts one explored node for a session.
func (db *DB) RecordState(sessionID string, depth, rating int, content string) (*State, error) {
	st := &State{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Depth:     depth,
		Rating:    rating,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := db.Exec(`
		INSERT INTO states (id, session_id, depth, rating, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, st.ID, st.SessionID, st.Depth, st.Rating, st.Content, formatTime(st.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("insert state: %w", err)
	}

	return st, nil
}

// GetSession retrieves a session by ID.
func (db *DB) GetSession(id string) (*Session, error) {
	row := db.QueryRow(`
		SELECT id, agent, method, task, started_at, finished_at, status
		FROM sessions WHERE id = ?
	`, id)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

// ListSessions returns all sessions, newest first.
func (db *DB) ListSessions() ([]*Session, error) {
	rows, err := db.Query(`
		SELECT id, agent, method, task, started_at, finished_at, status
		FROM sessions ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CountStates returns the number of recorded states for a session.
func (db *DB) CountStates(sessionID string) (int, error) {
	var n int
	row := db.QueryRow(`SELECT COUNT(*) FROM states WHERE session_id = ?`, sessionID)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count states: %w", err)
	}
	return n, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var method, status, startedAt string
	var finishedAt sql.NullString

	err := row.Scan(&s.ID, &s.Agent, &method, &s.Task, &startedAt, &finishedAt, &status)
	if err != nil {
		return nil, err
	}

	s.Method = reason.Method(method)
	s.Status = SessionStatus(status)
	if s.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if finishedAt.Valid {
		t, err := parseTime(finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		s.FinishedAt = &t
	}

	return &s, nil
}
