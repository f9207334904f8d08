package model

import "time"

type MoodLabel string

const (
	MoodPositive MoodLabel = "positive"
	MoodNegative MoodLabel = "negative"
	MoodNeutral  MoodLabel = "neutral"
)

// Mood is one analyzed mood statement.
type Mood struct {
	ID         string
	Text       string
	Label      MoodLabel
	Confidence float64 // [0, 1]
	CreatedAt  time.Time
}
