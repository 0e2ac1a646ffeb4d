package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type ToggleFavoriteUseCase struct {
	store  port.SelectionStorePort
	source port.PropertySourcePort
}

func NewToggleFavoriteUseCase(store port.SelectionStorePort, source port.PropertySourcePort) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{store: store, source: source}
}

// Execute добавляет объект в избранное, если его там нет, иначе убирает.
// Добавить можно только объект из каталога и не больше domain.MaxFavoriteItems,
// убрать можно любой, даже исчезнувший из каталога.
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, visitorID, propertyID string) (*domain.FavoriteToggleResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ToggleFavorite",
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
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	var isFavorite bool
	ids, err := uc.store.Update(ctx, visitorID, domain.SelectionFavorites, func(current []string) ([]string, error) {
		if idx := indexOf(current, propertyID); idx >= 0 {
			isFavorite = false
			return removeAt(current, idx), nil
		}
		if !known {
			return nil, domain.ErrPropertyNotFound
		}
		if len(current) >= domain.MaxFavoriteItems {
			return nil, domain.ErrFavoritesFull
		}
		isFavorite = true
		return append(current, propertyID), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			ucLogger.Warn("Property is not in the catalog", nil)
			return nil, err
		case errors.Is(err, domain.ErrFavoritesFull):
			ucLogger.Warn("Favorites list is full", port.Fields{"max_items": domain.MaxFavoriteItems})
			return nil, err
		}
		ucLogger.Error("Selection store returned an error", err, nil)
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"is_favorite":     isFavorite,
		"favorites_count": len(ids),
	})

	return &domain.FavoriteToggleResult{
		PropertyID:  propertyID,
		IsFavorite:  isFavorite,
		FavoriteIDs: ids,
	}, nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// removeAt возвращает новый срез без элемента idx, исходный не изменяется
func removeAt(ids []string, idx int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:idx]...)
	return append(out, ids[idx+1:]...)
}
