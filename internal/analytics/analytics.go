// Package analytics keeps an append-only activity log of task events.
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"labquest-backend/internal/middleware"
)

const (
	EventTaskCreated       = "task_created"
	EventTaskStatusChanged = "task_status_changed"
	EventTaskDeleted       = "task_deleted"
)

// Envelope is what we store with every event.
type Envelope struct {
	RequestID  string
	Platform   string
	AppVersion string
}

// FromRequest extracts event envelope fields from request.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	if platform != "ios" && platform != "android" && platform != "web" {
		platform = "unknown"
	}

	return Envelope{
		RequestID:  middleware.RequestIDFromContext(r.Context()),
		Platform:   platform,
		AppVersion: strings.TrimSpace(r.Header.Get("X-App-Version")),
	}
}

// Client-provided idempotency key (optional)
// If present and duplicates, insert is ignored.
func SourceEventKeyFromRequest(r *http.Request) string {
	k := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

type Event struct {
	ID         int64           `json:"id"`
	Name       string          `json:"event_name"`
	Time       time.Time       `json:"event_time"`
	TaskID     *int64          `json:"task_id"`
	Platform   string          `json:"platform"`
	AppVersion string          `json:"app_version,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	Properties json.RawMessage `json:"properties"`
}

type Recorder struct {
	db  *sql.DB
	now func() time.Time
}

func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Log inserts one event. Failures are logged and swallowed so the calling
// request never fails because of bookkeeping. A nil Recorder does nothing.
func (rec *Recorder) Log(ctx context.Context, env Envelope, eventName string, taskID int64, props any, sourceEventKey string) {
	if rec == nil || eventName == "" {
		return
	}

	b, err := json.Marshal(props)
	if err != nil {
		log.Printf("[WARN] analytics %s: marshal props: %v", eventName, err)
		return
	}

	_, err = rec.db.ExecContext(ctx, `
		INSERT INTO task_events (
			event_name, event_time, task_id,
			platform, app_version, request_id,
			source_event_key, properties
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (source_event_key) DO NOTHING
	`, eventName, rec.now(), taskID,
		env.Platform, nullIfEmpty(env.AppVersion), nullIfEmpty(env.RequestID),
		nullIfEmpty(sourceEventKey), string(b),
	)
	if err != nil {
		log.Printf("[WARN] analytics %s task_id=%d: %v", eventName, taskID, err)
	}
}

// Recent returns the newest events first.
func (rec *Recorder) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := rec.db.QueryContext(ctx, `
		SELECT id, event_name, event_time, task_id, platform,
		       COALESCE(app_version, ''), COALESCE(request_id, ''), properties
		FROM task_events
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	events := []Event{}
	for rows.Next() {
		var (
			e      Event
			taskID sql.NullInt64
			props  string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Time, &taskID, &e.Platform, &e.AppVersion, &e.RequestID, &props); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if taskID.Valid {
			e.TaskID = &taskID.Int64
		}
		e.Properties = json.RawMessage(props)
		events = append(events, e)
	}

	return events, rows.Err()
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
