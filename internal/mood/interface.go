package mood

import (
	"context"
	"time"

	"smart-routine/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	ListRecent(ctx context.Context, limit int) (ListOutput, error)
	Suggest(ctx context.Context, now time.Time) (SuggestOutput, error)
}

// Analyzer is the LLM call used for sentiment classification.
// *gemini.Client satisfies it.
type Analyzer interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

var _ Analyzer = (*gemini.Client)(nil)
