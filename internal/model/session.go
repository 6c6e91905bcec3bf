package model

import "time"

// Session is server-side login state keyed by an opaque ID carried in the
// session cookie. ExpiresAt slides forward on every authenticated request;
// a session that sits idle past it is treated as logged out.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}
