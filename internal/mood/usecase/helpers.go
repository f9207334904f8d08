package usecase

import (
	"math"
	"regexp"
	"strings"

	"smart-routine/internal/model"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return text
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeLabel accepts labels like "POSITIVE" or "positive (0.98)".
// Anything unrecognised is neutral.
func normalizeLabel(raw string) model.MoodLabel {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return model.MoodNeutral
	}
	switch label := model.MoodLabel(strings.Trim(fields[0], `".,;:`)); label {
	case model.MoodPositive, model.MoodNegative:
		return label
	}
	return model.MoodNeutral
}

func clampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c), c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}

func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max])
}
