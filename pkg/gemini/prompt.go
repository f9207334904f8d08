package gemini

import "fmt"

// MoodAnalysisSystemPrompt instructs the model to act as a sentiment classifier.
const MoodAnalysisSystemPrompt = `You are a sentiment classifier for a personal routine assistant.

RULES:
1. Read the user's statement about how they feel.
2. Classify it as exactly one of: "positive", "negative", "neutral".
3. Give your confidence as a number between 0 and 1.
4. Return ONLY a JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"I feel great after my morning run"

EXAMPLE OUTPUT:
{"label": "positive", "confidence": 0.97}`

// BuildMoodPrompt builds the user prompt for mood analysis.
func BuildMoodPrompt(text string) string {
	return fmt.Sprintf("%s\n\nINPUT:\n%q\n\nOUTPUT:", MoodAnalysisSystemPrompt, text)
}
