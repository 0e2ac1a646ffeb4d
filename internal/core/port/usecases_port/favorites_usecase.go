package usecases_port

import (
	"context"
	"catalog-service/internal/core/domain"
)

type ToggleFavoriteUseCase interface {
	Execute(ctx context.Context, visitorID, propertyID string) (*domain.FavoriteToggleResult, error)
}

type GetSelectionUseCase interface {
	Execute(ctx context.Context, visitorID string, list domain.SelectionList) ([]string, error)
}
