package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zanvidmar/stockpile/internal/model"
)

// RecordAction appends one immutable record to the audit trail. It is called
// in-line after every successful state-changing operation; a failure here fails
// the enclosing request.
func RecordAction(ctx context.Context, db *sql.DB, userID int64, itemID *int64, action string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO history (user_id, item_id, action_type, timestamp) VALUES (?, ?, ?, ?)`,
		userID, itemID, action, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("recording %s action: %w", action, err)
	}
	return nil
}

// ListHistory returns the full audit trail, newest first.
func ListHistory(ctx context.Context, db *sql.DB) ([]model.HistoryRecord, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, item_id, action_type, timestamp
		 FROM history ORDER BY timestamp DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var records []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		var itemID sql.NullInt64
		if err := rows.Scan(&rec.ID, &rec.UserID, &itemID, &rec.ActionType, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		if itemID.Valid {
			rec.ItemID = &itemID.Int64
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
