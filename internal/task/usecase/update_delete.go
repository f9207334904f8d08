package usecase

import (
	"context"

	"smart-routine/internal/model"
	"smart-routine/internal/task"
)

// MarkDone completes a task. Returns ErrTaskNotFound when id is unknown.
func (uc *implUseCase) MarkDone(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.MarkDone(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.MarkDone: MarkDone failed: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return uc.localize(t), nil
}

// Delete removes a task and its calendar event. Returns ErrTaskNotFound when id is unknown.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: GetTask failed: %v", err)
		return err
	}
	if t.ID == "" {
		return task.ErrTaskNotFound
	}

	uc.tryDeleteCalendarEvent(ctx, t)

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: DeleteTask failed: %v", err)
		return err
	}
	return nil
}
