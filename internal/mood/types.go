package mood

import "smart-routine/internal/model"

type AnalyzeInput struct {
	Text string
}

type AnalyzeOutput struct {
	Mood model.Mood
}

type ListOutput struct {
	Moods []model.Mood
}

// SuggestOutput carries the routine suggestion and the mood it was based on.
// Mood is nil when no mood has been recorded yet.
type SuggestOutput struct {
	Suggestion string
	Mood       *model.Mood
}
