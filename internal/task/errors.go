package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrCalendarDisabled = errors.New("calendar is not configured")
	ErrInvalidRange     = errors.New("invalid time range")
)
