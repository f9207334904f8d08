package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-routine/internal/model"
	repo "smart-routine/internal/task/repository"
	pkgSqlite "smart-routine/pkg/sqlite"
)

type scanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a pending task and returns it.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, due_at, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now()
	t := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		DueAt:     opt.DueAt,
		Status:    model.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var dueAt sql.NullString
	if opt.DueAt != nil {
		dueAt = sql.NullString{String: pkgSqlite.FormatTime(*opt.DueAt), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, dueAt, string(t.Status), pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns the task with id, or a zero Task when it does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// MarkDone sets the task status to done. Returns a zero Task when id is unknown.
func (r *implRepository) MarkDone(ctx context.Context, id string) (model.Task, error) {
	const query = `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`
	return r.update(ctx, "MarkDone", id, query, string(model.TaskStatusDone), pkgSqlite.FormatTime(time.Now()), id)
}

// SetCalendarEvent links a task to its calendar event.
func (r *implRepository) SetCalendarEvent(ctx context.Context, opt repo.SetCalendarEventOptions) (model.Task, error) {
	const query = `UPDATE tasks SET calendar_event_id = ?, calendar_link = ?, updated_at = ? WHERE id = ?`
	return r.update(ctx, "SetCalendarEvent", opt.ID, query, opt.EventID, opt.Link, pkgSqlite.FormatTime(time.Now()), opt.ID)
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) update(ctx context.Context, method, id, query string, args ...any) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetTask(ctx, id)
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                    model.Task
		status               string
		dueAt                sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&t.ID, &t.Title, &dueAt, &status, &t.CalendarEventID, &t.CalendarLink, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)

	var err error
	if dueAt.Valid {
		due, perr := pkgSqlite.ParseTime(dueAt.String)
		if perr != nil {
			return model.Task{}, fmt.Errorf("parse due_at: %w", perr)
		}
		t.DueAt = &due
	}
	if t.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = pkgSqlite.ParseTime(updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return t, nil
}
