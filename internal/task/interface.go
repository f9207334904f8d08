package task

import (
	"context"

	"smart-routine/internal/model"
	"smart-routine/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	ListPending(ctx context.Context) (ListOutput, error)
	MarkDone(ctx context.Context, id string) (model.Task, error)
	Delete(ctx context.Context, id string) error
	UpcomingEvents(ctx context.Context, input UpcomingInput) (UpcomingOutput, error)
}

// Calendar is the part of the calendar client used by tasks.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, req gcalendar.DeleteEventRequest) error
}

var _ Calendar = (*gcalendar.Client)(nil)
