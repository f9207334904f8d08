package usecase

import (
	"context"

	"smart-routine/internal/task"
	"smart-routine/pkg/gcalendar"
)

// UpcomingEvents lists calendar events in [From, To].
func (uc *implUseCase) UpcomingEvents(ctx context.Context, input task.UpcomingInput) (task.UpcomingOutput, error) {
	if uc.calendar == nil {
		return task.UpcomingOutput{}, task.ErrCalendarDisabled
	}

	from := input.From
	if from.IsZero() {
		from = uc.dateMath.Now(uc.now())
	}
	to := input.To
	if to.IsZero() {
		to = from.Add(defaultUpcomingWindow)
	}
	if to.Before(from) {
		return task.UpcomingOutput{}, task.ErrInvalidRange
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    from,
		TimeMax:    to,
		MaxResults: int64(limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpcomingEvents: ListEvents failed: %v", err)
		return task.UpcomingOutput{}, err
	}

	out := make([]task.Event, 0, len(events))
	for _, e := range events {
		out = append(out, uc.toEvent(e))
	}
	return task.UpcomingOutput{Events: out}, nil
}
