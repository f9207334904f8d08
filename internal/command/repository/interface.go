package repository

import (
	"context"

	"smart-routine/internal/model"
)

// Repository is the composed interface for the interaction log.
type Repository interface {
	InteractionRepository
}

type InteractionRepository interface {
	CreateInteraction(ctx context.Context, opt CreateInteractionOptions) (model.Interaction, error)
	// ListInteractions returns interactions newest first.
	ListInteractions(ctx context.Context, opt ListInteractionsOptions) ([]model.Interaction, error)
}
