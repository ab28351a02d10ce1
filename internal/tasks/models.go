package tasks

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

var (
	ErrNotFound      = errors.New("task not found")
	ErrInvalidStatus = errors.New("status must be one of: todo, doing, done")
	ErrEmptyTitle    = errors.New("title is required")
)

// ParseStatus maps raw input onto the closed status set. Empty input means todo.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return StatusTodo, nil
	case StatusTodo, StatusDoing, StatusDone:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	Exp         int       `json:"exp"`
	CreatedAt   time.Time `json:"created_at"`
}
