package usecase

import (
	"time"

	"smart-routine/internal/command"
	"smart-routine/internal/command/repository"
	"smart-routine/internal/mood"
	"smart-routine/internal/task"
	"smart-routine/pkg/datemath"
	pkgLog "smart-routine/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	taskUC   task.UseCase
	moodUC   mood.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

var _ command.UseCase = (*implUseCase)(nil)

// New creates the command UseCase. Commands are interpreted against the
// current time in the parser's timezone.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	taskUC task.UseCase,
	moodUC mood.UseCase,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		taskUC:   taskUC,
		moodUC:   moodUC,
		dateMath: dateMath,
		now:      time.Now,
	}
}
