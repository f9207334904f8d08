package usecase

import (
	"context"
	"strings"

	"smart-routine/internal/task"
	repo "smart-routine/internal/task/repository"
)

// Create stores a pending task. A scheduled task is mirrored to the calendar
// when one is configured; calendar failures do not fail the call.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Title: title, DueAt: input.DueAt})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: CreateTask failed: %v", err)
		return task.CreateOutput{}, err
	}

	if event := uc.tryCreateCalendarEvent(ctx, t, input); event != nil {
		linked, err := uc.repo.SetCalendarEvent(ctx, repo.SetCalendarEventOptions{
			ID:      t.ID,
			EventID: event.ID,
			Link:    event.HtmlLink,
		})
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.Create: failed to link calendar event %s to task %s (non-fatal): %v", event.ID, t.ID, err)
		} else if linked.ID != "" {
			t = linked
		}
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %q id=%s", t.Title, t.ID)
	return task.CreateOutput{Task: uc.localize(t)}, nil
}
