package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the JSON API router with all endpoints registered.
func NewRouter(db *sql.DB, secret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Secret: secret}
	inventoryHandler := &InventoryHandler{DB: db}

	sessionMW := SessionMiddleware(secret, db)

	// Public: registration and session lifecycle. Logout checks the cookie
	// itself so it can succeed without an active session.
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Inventory, scoped to the session user.
	mux.Handle("POST /inventory", sessionMW(http.HandlerFunc(inventoryHandler.Create)))
	mux.Handle("GET /inventory", sessionMW(http.HandlerFunc(inventoryHandler.List)))
	mux.Handle("GET /inventory/{id}", sessionMW(http.HandlerFunc(inventoryHandler.Get)))
	mux.Handle("PUT /inventory/{id}", sessionMW(http.HandlerFunc(inventoryHandler.Update)))
	mux.Handle("DELETE /inventory/{id}", sessionMW(http.HandlerFunc(inventoryHandler.Delete)))
	mux.Handle("PUT /inventory/{id}/image", sessionMW(http.HandlerFunc(inventoryHandler.UploadImage)))
	mux.Handle("GET /inventory/{id}/image", sessionMW(http.HandlerFunc(inventoryHandler.GetImage)))

	return mux
}
