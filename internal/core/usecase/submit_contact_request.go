package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/google/uuid"
)

type SubmitContactRequestUseCase struct {
	validator port.ContactValidatorPort
	publisher port.ContactRequestPublisherPort
	now       func() time.Time
}

// NewSubmitContactRequestUseCase - publisher может быть nil, тогда заявки не принимаются.
func NewSubmitContactRequestUseCase(validator port.ContactValidatorPort, publisher port.ContactRequestPublisherPort) *SubmitContactRequestUseCase {
	return &SubmitContactRequestUseCase{
		validator: validator,
		publisher: publisher,
		now:       time.Now,
	}
}

func (uc *SubmitContactRequestUseCase) Execute(ctx context.Context, req domain.ContactRequest) (*domain.AcceptedContactRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitContactRequest",
		"property_id": req.PropertyID,
	})

	ucLogger.Info("Use case started", nil)

	req = normalizeContactRequest(req)

	if err := uc.validator.Validate(req); err != nil {
		var vErr *domain.ContactValidationError
		if errors.As(err, &vErr) {
			ucLogger.Info("Contact request rejected by validation", port.Fields{"fields": vErr.Fields})
			return nil, err
		}
		ucLogger.Error("Validator failed", err, nil)
		return nil, fmt.Errorf("failed to validate contact request: %w", err)
	}

	if uc.publisher == nil {
		ucLogger.Warn("Contact request publisher is not configured", nil)
		return nil, domain.ErrContactDisabled
	}

	accepted := domain.AcceptedContactRequest{
		ID:         uuid.New(),
		Request:    req,
		ReceivedAt: uc.now().UTC(),
	}

	if err := uc.publisher.PublishContactRequest(ctx, accepted); err != nil {
		ucLogger.Error("Failed to publish contact request", err, port.Fields{"request_id": accepted.ID})
		return nil, fmt.Errorf("failed to publish contact request: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"request_id": accepted.ID})
	return &accepted, nil
}

func normalizeContactRequest(req domain.ContactRequest) domain.ContactRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	return req
}
