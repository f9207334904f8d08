package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-routine/internal/mood"
	"smart-routine/internal/mood/repository"
	"smart-routine/pkg/gemini"
)

// Analyze classifies the sentiment of input.Text and stores the result.
func (uc *implUseCase) Analyze(ctx context.Context, input mood.AnalyzeInput) (mood.AnalyzeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return mood.AnalyzeOutput{}, mood.ErrEmptyText
	}
	if uc.analyzer == nil {
		return mood.AnalyzeOutput{}, mood.ErrAnalyzerUnavailable
	}
	text = truncate(text, MaxTextLength)

	resp, err := uc.analyzer.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: gemini.BuildMoodPrompt(text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		uc.l.Warnf(ctx, "mood.usecase.Analyze: generate: %v", err)
		return mood.AnalyzeOutput{}, fmt.Errorf("%w: %w", mood.ErrAnalyzerUnavailable, err)
	}

	analysis, err := uc.parseAnalysis(ctx, resp.Text())
	if err != nil {
		return mood.AnalyzeOutput{}, fmt.Errorf("%w: %w", mood.ErrAnalyzerUnavailable, err)
	}

	m, err := uc.repo.CreateMood(ctx, repository.CreateMoodOptions{
		Text:       text,
		Label:      normalizeLabel(analysis.Label),
		Confidence: clampConfidence(analysis.Confidence),
	})
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.Analyze: store: %v", err)
		return mood.AnalyzeOutput{}, err
	}

	uc.l.Infof(ctx, "mood.usecase.Analyze: %s (%.2f)", m.Label, m.Confidence)
	return mood.AnalyzeOutput{Mood: m}, nil
}

func (uc *implUseCase) parseAnalysis(ctx context.Context, responseText string) (gemini.MoodAnalysis, error) {
	cleaned := sanitizeJSONResponse(responseText)

	var analysis gemini.MoodAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q Cleaned=%q", responseText, cleaned)
		return gemini.MoodAnalysis{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	return analysis, nil
}
