package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type AddToComparisonUseCase struct {
	store  port.SelectionStorePort
	source port.PropertySourcePort
}

func NewAddToComparisonUseCase(store port.SelectionStorePort, source port.PropertySourcePort) *AddToComparisonUseCase {
	return &AddToComparisonUseCase{store: store, source: source}
}

// Execute добавляет объект к сравнению. Повторное добавление ничего не меняет,
// четвертый объект отклоняется с domain.ErrComparisonFull, объект не из каталога
// с domain.ErrPropertyNotFound.
func (uc *AddToComparisonUseCase) Execute(ctx context.Context, visitorID, propertyID string) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddToComparison",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	if visitorID == "" {
		return nil, domain.ErrInvalidVisitorID
	}
	propertyID, err := normalizePropertyID(propertyID)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	known, err := catalogHasProperty(ctx, uc.source, propertyID)
	if err != nil {
		ucLogger.Error("Property source returned an error", err, nil)
		return nil, fmt.Errorf("failed to add to comparison: %w", err)
	}

	ids, err := uc.store.Update(ctx, visitorID, domain.SelectionComparison, func(current []string) ([]string, error) {
		if indexOf(current, propertyID) >= 0 {
			return current, nil
		}
		if len(current) >= domain.MaxComparisonItems {
			return nil, domain.ErrComparisonFull
		}
		if !known {
			return nil, domain.ErrPropertyNotFound
		}
		return append(current, propertyID), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrComparisonFull):
			ucLogger.Warn("Comparison list is full", port.Fields{"max_items": domain.MaxComparisonItems})
			return nil, err
		case errors.Is(err, domain.ErrPropertyNotFound):
			ucLogger.Warn("Property is not in the catalog", nil)
			return nil, err
		}
		ucLogger.Error("Selection store returned an error", err, nil)
		return nil, fmt.Errorf("failed to add to comparison: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"comparison_count": len(ids)})
	return ids, nil
}

type RemoveFromComparisonUseCase struct {
	store port.SelectionStorePort
}

func NewRemoveFromComparisonUseCase(store port.SelectionStorePort) *RemoveFromComparisonUseCase {
	return &RemoveFromComparisonUseCase{store: store}
}

func (uc *RemoveFromComparisonUseCase) Execute(ctx context.Context, visitorID, propertyID string) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromComparison",
		"visitor_id":  visitorID,
		"property_id": propertyID,
	})

	if visitorID == "" {
		return nil, domain.ErrInvalidVisitorID
	}

	ids, err := uc.store.Update(ctx, visitorID, domain.SelectionComparison, func(current []string) ([]string, error) {
		idx := indexOf(current, propertyID)
		if idx < 0 {
			return current, nil
		}
		return removeAt(current, idx), nil
	})
	if err != nil {
		ucLogger.Error("Selection store returned an error", err, nil)
		return nil, fmt.Errorf("failed to remove from comparison: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"comparison_count": len(ids)})
	return ids, nil
}
