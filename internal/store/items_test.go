package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/zanvidmar/stockpile/internal/db"
)

func testUser(t *testing.T, database *sql.DB, username string) int64 {
	t.Helper()
	user, err := CreateUser(context.Background(), database, username, username+"@example.com", "hash")
	if err != nil {
		t.Fatalf("creating test user %q: %v", username, err)
	}
	return user.ID
}

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := testUser(t, database, "alice")

	item, err := CreateItem(ctx, database, userID, "Widget", "A small widget", 5, 9.99)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ItemName != "Widget" {
		t.Errorf("expected name 'Widget', got %q", item.ItemName)
	}
	if item.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", item.Quantity)
	}
	if item.Price != 9.99 {
		t.Errorf("expected price 9.99, got %v", item.Price)
	}

	got, err := GetItem(ctx, database, userID, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.Description != "A small widget" {
		t.Errorf("expected description 'A small widget', got %q", got.Description)
	}
}

func TestGetItemOwnershipScoped(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	aliceID := testUser(t, database, "alice")
	bobID := testUser(t, database, "bob")

	item, _ := CreateItem(ctx, database, aliceID, "Widget", "", 1, 1.0)

	// Another user's lookup must look exactly like a missing item.
	got, err := GetItem(ctx, database, bobID, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != nil {
		t.Error("expected nil for another user's item")
	}
}

func TestListItemsPerOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	aliceID := testUser(t, database, "alice")
	bobID := testUser(t, database, "bob")

	CreateItem(ctx, database, aliceID, "Hammer", "", 1, 10)
	CreateItem(ctx, database, aliceID, "Nails", "", 100, 0.05)
	CreateItem(ctx, database, bobID, "Saw", "", 1, 25)

	aliceItems, err := ListItems(ctx, database, aliceID)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(aliceItems) != 2 {
		t.Errorf("expected 2 items for alice, got %d", len(aliceItems))
	}
	for _, item := range aliceItems {
		if item.ItemName == "Saw" {
			t.Error("alice's list contains bob's item")
		}
	}

	bobItems, _ := ListItems(ctx, database, bobID)
	if len(bobItems) != 1 {
		t.Errorf("expected 1 item for bob, got %d", len(bobItems))
	}
}

func TestUpdateItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := testUser(t, database, "alice")

	item, _ := CreateItem(ctx, database, userID, "Widget", "old", 5, 9.99)

	item.Quantity = 7
	item.Description = "new"
	if err := UpdateItem(ctx, database, item); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, _ := GetItem(ctx, database, userID, item.ID)
	if got.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", got.Quantity)
	}
	if got.Description != "new" {
		t.Errorf("expected description 'new', got %q", got.Description)
	}
	if got.ItemName != "Widget" {
		t.Errorf("expected name unchanged, got %q", got.ItemName)
	}
}

func TestDeleteItemIsPermanent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := testUser(t, database, "alice")

	item, _ := CreateItem(ctx, database, userID, "Widget", "", 1, 1.0)
	if err := DeleteItem(ctx, database, userID, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := GetItem(ctx, database, userID, item.ID)
	if got != nil {
		t.Error("expected item to be gone after delete")
	}

	items, _ := ListItems(ctx, database, userID)
	if len(items) != 0 {
		t.Errorf("expected 0 items after delete, got %d", len(items))
	}
}

func TestItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	aliceID := testUser(t, database, "alice")
	bobID := testUser(t, database, "bob")

	item, _ := CreateItem(ctx, database, aliceID, "Photo Item", "", 1, 1.0)
	imageData := []byte("fake image data")
	if err := SetItemImage(ctx, database, aliceID, item.ID, imageData, "image/jpeg"); err != nil {
		t.Fatalf("SetItemImage: %v", err)
	}

	data, mime, err := GetItemImage(ctx, database, aliceID, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}

	// Image reads are owner-scoped too.
	data, _, err = GetItemImage(ctx, database, bobID, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage as other user: %v", err)
	}
	if data != nil {
		t.Error("expected nil image for another user's item")
	}
}
