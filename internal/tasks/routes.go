package tasks

import (
	"net/http"

	"labquest-backend/internal/analytics"
)

// RegisterRoutes mounts the task, stats and activity endpoints. wrap is applied
// to every handler (auth); pass nil to mount them bare. events may be nil.
func RegisterRoutes(mux *http.ServeMux, store *Store, events *analytics.Recorder, wrap func(http.HandlerFunc) http.HandlerFunc) {
	if wrap == nil {
		wrap = func(h http.HandlerFunc) http.HandlerFunc { return h }
	}

	list := wrap(ListTasksHandler(store))
	create := wrap(CreateTaskHandler(store, events))
	stats := wrap(StatsHandler(store))

	mux.HandleFunc("GET /tasks/{$}", list)
	mux.HandleFunc("GET /tasks", list)
	mux.HandleFunc("POST /tasks/{$}", create)
	mux.HandleFunc("POST /tasks", create)
	mux.HandleFunc("PUT /tasks/{id}/status", wrap(UpdateTaskStatusHandler(store, events)))
	mux.HandleFunc("DELETE /tasks/{id}", wrap(DeleteTaskHandler(store, events)))

	mux.HandleFunc("GET /stats/{$}", stats)
	mux.HandleFunc("GET /stats", stats)

	if events != nil {
		activity := wrap(analytics.RecentEventsHandler(events))
		mux.HandleFunc("GET /activity/{$}", activity)
		mux.HandleFunc("GET /activity", activity)
	}
}
