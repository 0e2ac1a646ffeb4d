package usecases_port

import (
	"context"
	"catalog-service/internal/core/domain"
)

type SubmitContactRequestUseCase interface {
	Execute(ctx context.Context, req domain.ContactRequest) (*domain.AcceptedContactRequest, error)
}
