package analytics

import (
	"log"
	"net/http"
	"strconv"

	"labquest-backend/internal/httputil"
)

// RecentEventsHandler serves GET /activity/?limit=
func RecentEventsHandler(rec *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				httputil.WriteError(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = min(n, 500)
		}

		events, err := rec.Recent(r.Context(), limit)
		if err != nil {
			log.Printf("[ERROR] recent events: %v", err)
			httputil.WriteError(w, "db query error", http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, events)
	}
}
