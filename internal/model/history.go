package model

import "time"

// HistoryRecord is one entry in the append-only audit trail. Records are
// never updated or deleted; item_id is kept even after the item itself is
// removed, so it carries no foreign key.
type HistoryRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ItemID     *int64    `json:"item_id,omitempty"`
	ActionType string    `json:"action_type"`
	Timestamp  time.Time `json:"timestamp"`
}

// Audited action types.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
)
