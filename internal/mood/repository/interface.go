package repository

import (
	"context"

	"smart-routine/internal/model"
)

// Repository is the composed interface for the mood data store.
type Repository interface {
	MoodRepository
}

type MoodRepository interface {
	CreateMood(ctx context.Context, opt CreateMoodOptions) (model.Mood, error)
	// ListMoods returns moods newest first.
	ListMoods(ctx context.Context, opt ListMoodsOptions) ([]model.Mood, error)
	// GetLatestMood returns a zero Mood (ID == "") when none is stored.
	GetLatestMood(ctx context.Context) (model.Mood, error)
}
