package web

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the web page router.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{DB: db, Templates: templates}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /history", s.HistoryPage)

	return mux, nil
}
