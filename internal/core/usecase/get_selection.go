package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetSelectionUseCase struct {
	store port.SelectionStorePort
}

func NewGetSelectionUseCase(store port.SelectionStorePort) *GetSelectionUseCase {
	return &GetSelectionUseCase{store: store}
}

func (uc *GetSelectionUseCase) Execute(ctx context.Context, visitorID string, list domain.SelectionList) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetSelection",
		"visitor_id": visitorID,
		"list":       string(list),
	})

	if visitorID == "" {
		return nil, domain.ErrInvalidVisitorID
	}

	ids, err := uc.store.Get(ctx, visitorID, list)
	if err != nil {
		logger.Error("Selection store returned an error", err, nil)
		return nil, fmt.Errorf("failed to read %s: %w", list, err)
	}

	logger.Debug("Selection loaded", port.Fields{"count": len(ids)})
	return ids, nil
}
