package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zanvidmar/stockpile/internal/model"
)

// CreateSession stores a new server-side session.
func CreateSession(ctx context.Context, db *sql.DB, id string, userID int64, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`,
		id, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	// Opportunistically clean up expired sessions.
	_, _ = db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now(),
	)

	return nil
}

// GetSession returns a session by ID, or nil if it does not exist.
// Expiry is checked by the caller so the cutoff stays in one place.
func GetSession(ctx context.Context, db *sql.DB, id string) (*model.Session, error) {
	s := &model.Session{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return s, nil
}

// TouchSession slides a session's expiry forward.
func TouchSession(ctx context.Context, db *sql.DB, id string, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`UPDATE sessions SET expires_at = ? WHERE id = ?`, expiresAt, id,
	)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Deleting a missing session is not an error.
func DeleteSession(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM sessions WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
