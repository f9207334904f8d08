package repository

import (
	"context"

	"smart-routine/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines data access for tasks. Lookups by ID return a zero
// Task (ID == "") when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	MarkDone(ctx context.Context, id string) (model.Task, error)
	SetCalendarEvent(ctx context.Context, opt SetCalendarEventOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
