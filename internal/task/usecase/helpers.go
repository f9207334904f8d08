package usecase

import (
	"context"
	"strings"

	"smart-routine/internal/model"
	"smart-routine/internal/task"
	"smart-routine/pkg/gcalendar"
)

// tryCreateCalendarEvent mirrors a scheduled task to the calendar.
// Returns nil when there is nothing to mirror or the calendar call failed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task, input task.CreateInput) *gcalendar.Event {
	if uc.calendar == nil || t.DueAt == nil {
		return nil
	}

	start := uc.dateMath.Now(*t.DueAt)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(input.Description),
		Location:    input.Location,
		Attendees:   input.Attendees,
		StartTime:   start,
		EndTime:     start.Add(uc.cfg.EventDuration),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return nil
	}
	return event
}

func (uc *implUseCase) tryDeleteCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || !t.HasCalendarEvent() {
		return
	}
	err := uc.calendar.DeleteEvent(ctx, gcalendar.DeleteEventRequest{
		CalendarID: uc.cfg.CalendarID,
		EventID:    t.CalendarEventID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Delete: calendar event %s deletion failed (non-fatal): %v", t.CalendarEventID, err)
	}
}

// localize moves stored UTC times into the user's timezone.
func (uc *implUseCase) localize(t model.Task) model.Task {
	if t.DueAt != nil {
		due := uc.dateMath.Now(*t.DueAt)
		t.DueAt = &due
	}
	t.CreatedAt = uc.dateMath.Now(t.CreatedAt)
	t.UpdatedAt = uc.dateMath.Now(t.UpdatedAt)
	return t
}

func (uc *implUseCase) toEvent(e gcalendar.Event) task.Event {
	return task.Event{
		ID:       e.ID,
		Summary:  e.Summary,
		Start:    uc.dateMath.Now(e.StartTime),
		End:      uc.dateMath.Now(e.EndTime),
		Location: e.Location,
		Link:     e.HtmlLink,
	}
}
