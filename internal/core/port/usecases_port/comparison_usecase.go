package usecases_port

import "context"

type AddToComparisonUseCase interface {
	Execute(ctx context.Context, visitorID, propertyID string) ([]string, error)
}

type RemoveFromComparisonUseCase interface {
	Execute(ctx context.Context, visitorID, propertyID string) ([]string, error)
}
