package http

import (
	"errors"
	"time"

	"smart-routine/internal/model"
	"smart-routine/internal/task"
	"smart-routine/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	DueAt       *time.Time `json:"due_at"`
	Description string     `json:"description" binding:"max=1000"`
	Location    string     `json:"location"    binding:"max=255"`
	Attendees   []string   `json:"attendees"   binding:"omitempty,dive,email"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		DueAt:       r.DueAt,
		Description: r.Description,
		Location:    r.Location,
		Attendees:   r.Attendees,
	}
}

// ---

type eventsReq struct {
	From  time.Time `form:"from"  time_format:"2006-01-02T15:04:05Z07:00"`
	To    time.Time `form:"to"    time_format:"2006-01-02T15:04:05Z07:00"`
	Limit int       `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r eventsReq) validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return errors.New("to must not be before from")
	}
	return nil
}

func (r eventsReq) toInput() task.UpcomingInput {
	return task.UpcomingInput{From: r.From, To: r.To, Limit: r.Limit}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	DueAt        *response.DateTime `json:"due_at,omitempty"`
	Status       string             `json:"status"`
	CalendarLink string             `json:"calendar_link,omitempty"`
	CreatedAt    response.DateTime  `json:"created_at"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

type eventResp struct {
	ID       string            `json:"id"`
	Summary  string            `json:"summary"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
	Location string            `json:"location,omitempty"`
	Link     string            `json:"link,omitempty"`
}

type eventsResp struct {
	Events []eventResp `json:"events"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		DueAt:        response.NewDateTime(t.DueAt),
		Status:       string(t.Status),
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.DateTime(t.CreatedAt),
	}
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks}
}

func (h *handler) newEventsResp(o task.UpcomingOutput) eventsResp {
	events := make([]eventResp, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, eventResp{
			ID:       e.ID,
			Summary:  e.Summary,
			Start:    response.DateTime(e.Start),
			End:      response.DateTime(e.End),
			Location: e.Location,
			Link:     e.Link,
		})
	}
	return eventsResp{Events: events}
}
