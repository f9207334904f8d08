package repository

import "smart-routine/internal/model"

type CreateMoodOptions struct {
	Text       string
	Label      model.MoodLabel
	Confidence float64
}

type ListMoodsOptions struct {
	Limit int
}
