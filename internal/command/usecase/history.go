package usecase

import (
	"context"

	"smart-routine/internal/command"
	"smart-routine/internal/command/repository"
)

// History returns the most recent interactions, newest first.
func (uc *implUseCase) History(ctx context.Context, limit int) (command.HistoryOutput, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	interactions, err := uc.repo.ListInteractions(ctx, repository.ListInteractionsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.History: %v", err)
		return command.HistoryOutput{}, err
	}
	return command.HistoryOutput{Interactions: interactions}, nil
}
