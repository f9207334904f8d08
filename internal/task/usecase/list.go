package usecase

import (
	"context"

	"smart-routine/internal/model"
	"smart-routine/internal/task"
	repo "smart-routine/internal/task/repository"
)

// ListPending returns pending tasks, soonest first, unscheduled last.
func (uc *implUseCase) ListPending(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Status: model.TaskStatusPending})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListPending: ListTasks failed: %v", err)
		return task.ListOutput{}, err
	}

	for i := range tasks {
		tasks[i] = uc.localize(tasks[i])
	}
	return task.ListOutput{Tasks: tasks}, nil
}
