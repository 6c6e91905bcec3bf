package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/zanvidmar/stockpile/internal/imaging"
	"github.com/zanvidmar/stockpile/internal/model"
	"github.com/zanvidmar/stockpile/internal/store"
)

// InventoryHandler handles inventory CRUD endpoints. Every operation is
// scoped to the session user resolved by SessionMiddleware.
type InventoryHandler struct {
	DB *sql.DB
}

// itemRequest covers both create and partial update. Pointer fields tell an
// absent field apart from a zero value; quantity arrives as float64 so a
// fractional value is a validation error, not a malformed body.
type itemRequest struct {
	ItemName    *string  `json:"item_name"`
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Create handles POST /inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateCreateItem(req); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	item, err := store.CreateItem(r.Context(), h.DB, sess.UserID,
		*req.ItemName, description, int64(*req.Quantity), *req.Price)
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, sess.UserID, &item.ID, model.ActionCreate); err != nil {
		respondInternal(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "Item created successfully!", map[string]any{
		"item_id": item.ID,
	})
}

// List handles GET /inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	items, err := store.ListItems(r.Context(), h.DB, sess.UserID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	respondSuccess(w, http.StatusOK, "Items retrieved successfully!", map[string]any{
		"items": items,
	})
}

// Get handles GET /inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	item, ok := h.ownedItem(w, r, sess.UserID)
	if !ok {
		return
	}

	respondSuccess(w, http.StatusOK, "Item retrieved successfully!", map[string]any{
		"item": item,
	})
}

// Update handles PUT /inventory/{id}. Fields absent from the body keep their
// current values; fields present are validated and overwritten.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	item, ok := h.ownedItem(w, r, sess.UserID)
	if !ok {
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateUpdateItem(req); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = int64(*req.Quantity)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := store.UpdateItem(r.Context(), h.DB, item); err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, sess.UserID, &item.ID, model.ActionUpdate); err != nil {
		respondInternal(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Item updated successfully!", map[string]any{
		"item_id": item.ID,
	})
}

// Delete handles DELETE /inventory/{id}. The item is removed permanently;
// history records referencing it are retained.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	item, ok := h.ownedItem(w, r, sess.UserID)
	if !ok {
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, sess.UserID, item.ID); err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, sess.UserID, &item.ID, model.ActionDelete); err != nil {
		respondInternal(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Item deleted successfully!", map[string]any{
		"item_id": item.ID,
	})
}

// UploadImage handles PUT /inventory/{id}/image. The photo is normalized
// (downscaled, re-encoded as JPEG) before storage and logged as an update.
func (h *InventoryHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	item, ok := h.ownedItem(w, r, sess.UserID)
	if !ok {
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		respondFailure(w, http.StatusBadRequest, "File too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondFailure(w, http.StatusBadRequest, "Image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, sess.UserID, item.ID, result.Data, result.MIME); err != nil {
		respondInternal(w, err)
		return
	}

	if err := store.RecordAction(r.Context(), h.DB, sess.UserID, &item.ID, model.ActionUpdate); err != nil {
		respondInternal(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "Image uploaded successfully!", map[string]any{
		"item_id": item.ID,
	})
}

// GetImage handles GET /inventory/{id}/image.
func (h *InventoryHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())

	item, ok := h.ownedItem(w, r, sess.UserID)
	if !ok {
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, sess.UserID, item.ID)
	if err != nil {
		respondInternal(w, err)
		return
	}
	if data == nil {
		respondFailure(w, http.StatusNotFound, "No image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write(data)
}

// ownedItem resolves the {id} path value to an item owned by userID. A
// malformed ID, a missing item, and another user's item all produce the same
// 404 so existence of foreign items never leaks.
func (h *InventoryHandler) ownedItem(w http.ResponseWriter, r *http.Request, userID int64) (*model.Item, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondFailure(w, http.StatusNotFound, "Item not found")
		return nil, false
	}

	item, err := store.GetItem(r.Context(), h.DB, userID, id)
	if err != nil {
		respondInternal(w, err)
		return nil, false
	}
	if item == nil {
		respondFailure(w, http.StatusNotFound, "Item not found")
		return nil, false
	}

	return item, true
}
