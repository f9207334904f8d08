package repository

import (
	"time"

	"smart-routine/internal/model"
)

type CreateTaskOptions struct {
	Title string
	DueAt *time.Time
}

// ListTasksOptions filters tasks. Results are ordered by due time with
// unscheduled tasks last, then by creation time.
type ListTasksOptions struct {
	Status model.TaskStatus
	Limit  int
}

type SetCalendarEventOptions struct {
	ID      string
	EventID string
	Link    string
}
