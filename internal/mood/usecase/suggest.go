package usecase

import (
	"context"
	"time"

	"smart-routine/internal/model"
	"smart-routine/internal/mood"
)

// Suggest picks a routine suggestion from the latest mood and the hour of now.
func (uc *implUseCase) Suggest(ctx context.Context, now time.Time) (mood.SuggestOutput, error) {
	latest, err := uc.repo.GetLatestMood(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.Suggest: %v", err)
		return mood.SuggestOutput{}, err
	}
	if latest.ID == "" {
		return mood.SuggestOutput{Suggestion: SuggestionNoMood}, nil
	}

	return mood.SuggestOutput{
		Suggestion: suggestionFor(latest.Label, now.Hour()),
		Mood:       &latest,
	}, nil
}

// suggestionFor maps a label and hour to a suggestion. Neutral moods get the
// same prompt as no mood at all.
func suggestionFor(label model.MoodLabel, hour int) string {
	morning := hour >= 6 && hour <= 10
	midday := hour >= 12 && hour <= 14

	switch label {
	case model.MoodPositive:
		switch {
		case morning:
			return SuggestionPositiveMorning
		case midday:
			return SuggestionPositiveMidday
		default:
			return SuggestionPositiveOther
		}
	case model.MoodNegative:
		switch {
		case morning:
			return SuggestionNegativeMorning
		case midday:
			return SuggestionNegativeMidday
		default:
			return SuggestionNegativeOther
		}
	}
	return SuggestionNoMood
}
