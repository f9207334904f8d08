package usecase

import (
	"time"

	"smart-routine/internal/task"
	"smart-routine/internal/task/repository"
	"smart-routine/pkg/datemath"
	pkgLog "smart-routine/pkg/log"
)

// Config tunes calendar mirroring.
type Config struct {
	CalendarID    string
	EventDuration time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar task.Calendar
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. calendar may be nil, in which case
// tasks are stored without calendar events.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar task.Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
