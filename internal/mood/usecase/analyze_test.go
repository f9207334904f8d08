package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-routine/internal/model"
	"smart-routine/internal/mood"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores classified mood", func(t *testing.T) {
		a := &mockAnalyzer{reply: "```json\n{\"label\": \"Positive\", \"confidence\": 0.93}\n```"}
		uc := newTestUseCase(t, a)

		out, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "  I feel great today  "})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if out.Mood.Label != model.MoodPositive || out.Mood.Confidence != 0.93 {
			t.Errorf("unexpected mood: %+v", out.Mood)
		}
		if out.Mood.Text != "I feel great today" {
			t.Errorf("expected trimmed text, got %q", out.Mood.Text)
		}
		if len(a.requests) != 1 || !strings.Contains(a.requests[0].Contents[0].Parts[0].Text, "I feel great today") {
			t.Errorf("prompt does not carry the statement: %+v", a.requests)
		}

		list, err := uc.ListRecent(ctx, 0)
		if err != nil {
			t.Fatalf("ListRecent: %v", err)
		}
		if len(list.Moods) != 1 || list.Moods[0].ID != out.Mood.ID {
			t.Errorf("expected stored mood, got %+v", list.Moods)
		}
	})

	t.Run("Clamps confidence and defaults label", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAnalyzer{reply: `{"label":"ambivalent","confidence":4.2}`})

		out, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "mood check"})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if out.Mood.Label != model.MoodNeutral || out.Mood.Confidence != 1 {
			t.Errorf("unexpected mood: %+v", out.Mood)
		}
	})

	t.Run("Empty text", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAnalyzer{})
		if _, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "   "}); !errors.Is(err, mood.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("No analyzer", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		if _, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "i feel fine"}); !errors.Is(err, mood.ErrAnalyzerUnavailable) {
			t.Errorf("expected ErrAnalyzerUnavailable, got %v", err)
		}
	})

	t.Run("Model failure", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAnalyzer{err: errModelDown})
		_, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "i feel fine"})
		if !errors.Is(err, mood.ErrAnalyzerUnavailable) || !errors.Is(err, errModelDown) {
			t.Errorf("expected wrapped ErrAnalyzerUnavailable, got %v", err)
		}
	})

	t.Run("Unparseable reply", func(t *testing.T) {
		uc := newTestUseCase(t, &mockAnalyzer{reply: "I think they are happy"})
		if _, err := uc.Analyze(ctx, mood.AnalyzeInput{Text: "i feel fine"}); !errors.Is(err, mood.ErrAnalyzerUnavailable) {
			t.Errorf("expected ErrAnalyzerUnavailable, got %v", err)
		}

		list, _ := uc.ListRecent(ctx, 10)
		if len(list.Moods) != 0 {
			t.Errorf("expected nothing stored, got %d moods", len(list.Moods))
		}
	})
}
