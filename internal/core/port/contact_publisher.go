package port

import (
	"context"
	"catalog-service/internal/core/domain"
)

// ContactRequestPublisherPort передает принятую заявку дальше (в очередь менеджеров).
type ContactRequestPublisherPort interface {
	PublishContactRequest(ctx context.Context, req domain.AcceptedContactRequest) error
}
