package usecase

import (
	"context"

	"smart-routine/internal/mood"
	"smart-routine/internal/mood/repository"
)

// ListRecent returns up to limit moods, newest first.
func (uc *implUseCase) ListRecent(ctx context.Context, limit int) (mood.ListOutput, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	moods, err := uc.repo.ListMoods(ctx, repository.ListMoodsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.ListRecent: %v", err)
		return mood.ListOutput{}, err
	}
	return mood.ListOutput{Moods: moods}, nil
}
