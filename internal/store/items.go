package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zanvidmar/stockpile/internal/model"
)

// CreateItem creates a new inventory item owned by userID.
func CreateItem(ctx context.Context, db *sql.DB, userID int64, name, description string, quantity int64, price float64) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (user_id, item_name, description, quantity, price)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, name, description, quantity, price,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, userID, id)
}

// GetItem returns an item by ID, scoped to its owner. A missing item and an
// item owned by someone else both return nil so callers cannot tell them apart.
func GetItem(ctx context.Context, db *sql.DB, userID, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, item_name, description, quantity, price, image_mime, created_at, updated_at
		 FROM items WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&item.ID, &item.UserID, &item.ItemName, &description, &item.Quantity, &item.Price,
		&imageMime, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

// ListItems returns all items owned by userID in insertion order.
func ListItems(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, item_name, description, quantity, price, image_mime, created_at, updated_at
		 FROM items WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.ItemName, &description, &item.Quantity,
			&item.Price, &imageMime, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem writes an item's fields back, scoped to its owner.
func UpdateItem(ctx context.Context, db *sql.DB, item *model.Item) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET item_name = ?, description = ?, quantity = ?, price = ?,
		        updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		item.ItemName, item.Description, item.Quantity, item.Price, item.ID, item.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// DeleteItem permanently removes an item, scoped to its owner. History records
// referencing the item are kept.
func DeleteItem(ctx context.Context, db *sql.DB, userID, id int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// SetItemImage stores an item's photo, scoped to its owner.
func SetItemImage(ctx context.Context, db *sql.DB, userID, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		image, mime, id, userID,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo and MIME type, scoped to its owner.
func GetItemImage(ctx context.Context, db *sql.DB, userID, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}
