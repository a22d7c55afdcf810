package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ChatSession is a stored interview copilot conversation.
type ChatSession struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredMessage is one stored turn of a chat session.
type StoredMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession creates a new chat session.
func (db *DB) CreateSession(ctx context.Context, title string) (*ChatSession, error) {
	session := &ChatSession{ID: uuid.New(), Title: title}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_sessions (id, title) VALUES ($1, $2) RETURNING created_at`,
		session.ID, session.Title,
	).Scan(&session.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a chat session by ID, or nil when not found.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*ChatSession, error) {
	var session ChatSession
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, created_at FROM chat_sessions WHERE id = $1`, id,
	).Scan(&session.ID, &session.Title, &session.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// ListSessions returns all chat sessions, newest first.
func (db *DB) ListSessions(ctx context.Context) ([]ChatSession, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at FROM chat_sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []ChatSession
	for rows.Next() {
		var session ChatSession
		if err := rows.Scan(&session.ID, &session.Title, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a chat session and its messages. Returns false when
// no session with that ID existed.
func (db *DB) DeleteSession(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddMessage appends a message to a session.
func (db *DB) AddMessage(ctx context.Context, sessionID uuid.UUID, sender, content string) (*StoredMessage, error) {
	msg := &StoredMessage{ID: uuid.New(), SessionID: sessionID, Sender: sender, Content: content}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (id, session_id, sender, content)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		msg.ID, msg.SessionID, msg.Sender, msg.Content,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}
	return msg, nil
}

// ListMessages returns a session's messages in chronological order.
func (db *DB) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]StoredMessage, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, sender, content, created_at
		 FROM chat_messages WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []StoredMessage
	for rows.Next() {
		var msg StoredMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}
