package usecase

import "time"

const (
	DefaultEventDuration = 30 * time.Minute

	defaultUpcomingWindow = 7 * 24 * time.Hour
	defaultUpcomingLimit  = 10
)
