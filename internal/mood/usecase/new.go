package usecase

import (
	"smart-routine/internal/mood"
	"smart-routine/internal/mood/repository"
	pkgLog "smart-routine/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	analyzer mood.Analyzer
}

var _ mood.UseCase = (*implUseCase)(nil)

// New creates a new mood UseCase. analyzer may be nil; Analyze then reports
// mood.ErrAnalyzerUnavailable while listing and suggestions keep working.
func New(l pkgLog.Logger, repo repository.Repository, analyzer mood.Analyzer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		analyzer: analyzer,
	}
}
