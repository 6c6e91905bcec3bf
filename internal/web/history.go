package web

import (
	"net/http"
	"time"

	"github.com/zanvidmar/stockpile/internal/store"
)

// historyRow is one audit record prepared for rendering.
type historyRow struct {
	UserID       int64
	ItemID       *int64
	ActionType   string
	Timestamp    time.Time
	RelativeTime string
}

// HistoryPage handles GET /history: the full audit trail, newest first, with
// human-readable ages.
func (s *Server) HistoryPage(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListHistory(r.Context(), s.DB)
	if err != nil {
		http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	rows := make([]historyRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, historyRow{
			UserID:       rec.UserID,
			ItemID:       rec.ItemID,
			ActionType:   rec.ActionType,
			Timestamp:    rec.Timestamp,
			RelativeTime: RelativeTime(now, rec.Timestamp),
		})
	}

	s.Templates.Render(w, "history.html", &struct {
		Title   string
		Records []historyRow
	}{
		Title:   "Action history",
		Records: rows,
	})
}
