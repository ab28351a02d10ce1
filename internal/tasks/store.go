package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Store persists tasks. Queries use $n placeholders, which both SQLite and
// PostgreSQL accept.
type Store struct {
	db      *sql.DB
	taskExp int
	now     func() time.Time
}

// NewStore returns a Store that grants taskExp experience to each new task.
func NewStore(db *sql.DB, taskExp int) *Store {
	return &Store{
		db:      db,
		taskExp: taskExp,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, status, exp, created_at
		FROM tasks
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, exp, created_at
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	if err != nil {
		return Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, in CreateInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	status := in.Status
	if status == "" {
		status = StatusTodo
	}

	t := Task{
		Title:       title,
		Description: in.Description,
		Status:      status,
		Exp:         s.taskExp,
		CreatedAt:   s.now(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, status, exp, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.Title, t.Description, string(t.Status), t.Exp, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}

	return t, nil
}

// UpdateStatus overwrites the status of task id and returns the stored record.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) (Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Task{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE tasks SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	if affected == 0 {
		return Task{}, ErrNotFound
	}

	row := tx.QueryRowContext(ctx, `
		SELECT id, title, description, status, exp, created_at
		FROM tasks
		WHERE id = $1
	`, id)
	t, err := scanTask(row)
	if err != nil {
		return Task{}, fmt.Errorf("reload task %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return Task{}, fmt.Errorf("commit: %w", err)
	}
	return t, nil
}

// Delete removes task id. It reports false when there was nothing to remove.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	return affected > 0, nil
}

// TotalExperience sums exp over done tasks.
func (s *Store) TotalExperience(ctx context.Context) (int, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(exp), 0) FROM tasks WHERE status = $1`,
		string(StatusDone),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum exp: %w", err)
	}
	return int(total), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (Task, error) {
	var (
		t      Task
		desc   sql.NullString
		status string
	)

	if err := sc.Scan(&t.ID, &t.Title, &desc, &status, &t.Exp, &t.CreatedAt); err != nil {
		return Task{}, err
	}

	if desc.Valid {
		t.Description = &desc.String
	}
	t.Status = Status(status)
	return t, nil
}
