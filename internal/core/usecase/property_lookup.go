package usecase

import (
	"context"
	"fmt"
	"strings"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

func normalizePropertyID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > domain.MaxPropertyIDLength {
		return "", domain.ErrInvalidPropertyID
	}
	return id, nil
}

// catalogHasProperty проверяет, что объект с таким id есть в каталоге.
// В списки посетителя попадают только известные каталогу объекты.
func catalogHasProperty(ctx context.Context, source port.PropertySourcePort, id string) (bool, error) {
	records, err := source.LoadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, r := range records {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}
