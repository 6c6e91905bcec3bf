package model

import "time"

// Item is an inventory entry owned by exactly one user. Ownership never
// transfers; all reads and writes are scoped to the owning user.
type Item struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	ItemName    string    `json:"item_name"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Price       float64   `json:"price"`
	ImageMime   string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Item name and description length limits.
const (
	ItemNameMinLen    = 3
	ItemNameMaxLen    = 100
	DescriptionMaxLen = 500
)
