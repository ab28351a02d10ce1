package tasks

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"labquest-backend/internal/analytics"
	"labquest-backend/internal/httputil"
	"labquest-backend/internal/leveling"
	"labquest-backend/internal/metrics"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// -------------------------------
// HANDLERS
// -------------------------------

func ListTasksHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := queryInt(r, "skip", 0)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit, err := queryInt(r, "limit", defaultLimit)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		list, err := store.List(r.Context(), skip, limit)
		if err != nil {
			log.Printf("[ERROR] list tasks: %v", err)
			httputil.WriteError(w, "db query error", http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, list)
	}
}

func CreateTaskHandler(store *Store, events *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			httputil.WriteError(w, "invalid json", http.StatusBadRequest)
			return
		}

		status, err := ParseStatus(body.Status)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := store.Create(r.Context(), CreateInput{
			Title:       body.Title,
			Description: body.Description,
			Status:      status,
		})
		if errors.Is(err, ErrEmptyTitle) {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Printf("[ERROR] create task: %v", err)
			httputil.WriteError(w, "db insert error", http.StatusInternalServerError)
			return
		}

		metrics.RecordTaskCreated(string(created.Status))
		events.Log(r.Context(), analytics.FromRequest(r), analytics.EventTaskCreated, created.ID, map[string]any{
			"status": created.Status,
			"exp":    created.Exp,
		}, analytics.SourceEventKeyFromRequest(r))
		httputil.WriteJSON(w, http.StatusOK, created)
	}
}

func UpdateTaskStatusHandler(store *Store, events *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		raw := r.URL.Query().Get("status")
		if raw == "" {
			httputil.WriteError(w, "status query parameter is required", http.StatusBadRequest)
			return
		}
		status, err := ParseStatus(raw)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := store.UpdateStatus(r.Context(), id, status)
		if errors.Is(err, ErrNotFound) {
			httputil.WriteError(w, "Task not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("[ERROR] update task_id=%d: %v", id, err)
			httputil.WriteError(w, "db update error", http.StatusInternalServerError)
			return
		}

		metrics.RecordTaskStatusChanged(string(updated.Status))
		events.Log(r.Context(), analytics.FromRequest(r), analytics.EventTaskStatusChanged, updated.ID, map[string]any{
			"status": updated.Status,
			"exp":    updated.Exp,
		}, analytics.SourceEventKeyFromRequest(r))
		httputil.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteTaskHandler(store *Store, events *analytics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		deleted, err := store.Delete(r.Context(), id)
		if err != nil {
			log.Printf("[ERROR] delete task_id=%d: %v", id, err)
			httputil.WriteError(w, "db delete error", http.StatusInternalServerError)
			return
		}
		if !deleted {
			httputil.WriteError(w, "Task not found", http.StatusNotFound)
			return
		}

		metrics.RecordTaskDeleted()
		events.Log(r.Context(), analytics.FromRequest(r), analytics.EventTaskDeleted, id, map[string]any{}, analytics.SourceEventKeyFromRequest(r))
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"detail": "Task deleted"})
	}
}

// StatsHandler reports level and title derived from the exp of done tasks.
func StatsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := store.TotalExperience(r.Context())
		if err != nil {
			log.Printf("[ERROR] total exp: %v", err)
			httputil.WriteError(w, "db query error", http.StatusInternalServerError)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, leveling.Compute(total))
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid task id")
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}
