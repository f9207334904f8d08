package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Task is a to-do item, optionally scheduled and mirrored to the calendar.
type Task struct {
	ID              string     // UUID
	Title           string
	DueAt           *time.Time // nil when the task has no time
	Status          TaskStatus
	CalendarEventID string // empty when no event was created
	CalendarLink    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasCalendarEvent reports whether the task is mirrored to the calendar.
func (t Task) HasCalendarEvent() bool {
	return t.CalendarEventID != ""
}
