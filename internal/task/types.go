package task

import (
	"time"

	"smart-routine/internal/model"
)

type CreateInput struct {
	Title       string
	DueAt       *time.Time
	Description string
	Location    string
	Attendees   []string
}

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

// UpcomingInput bounds a calendar lookup. Zero values take the defaults:
// From = now, To = From + 7 days, Limit = 10.
type UpcomingInput struct {
	From  time.Time
	To    time.Time
	Limit int
}

// Event is a calendar entry as seen by the task flow.
type Event struct {
	ID       string
	Summary  string
	Start    time.Time
	End      time.Time
	Location string
	Link     string
}

type UpcomingOutput struct {
	Events []Event
}
