package mood

import "errors"

var (
	ErrEmptyText           = errors.New("mood text is empty")
	ErrAnalyzerUnavailable = errors.New("mood analyzer unavailable")
)
