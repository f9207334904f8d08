package command

import (
	"context"

	"smart-routine/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
	History(ctx context.Context, limit int) (HistoryOutput, error)
}
