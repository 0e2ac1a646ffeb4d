package usecase

import (
	"context"
	"fmt"
	"math"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/filterengine"
	"catalog-service/internal/core/port"
)

type SearchCatalogUseCase struct {
	source port.PropertySourcePort
}

func NewSearchCatalogUseCase(source port.PropertySourcePort) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{source: source}
}

// Execute читает весь каталог, оставляет подходящие карточки и упорядочивает их.
// Сортируются только видимые записи, как и на странице каталога.
func (uc *SearchCatalogUseCase) Execute(ctx context.Context, spec domain.FilterSpec, sortKey domain.SortKey) (*domain.CatalogPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchCatalog",
		"filters":  describeSpec(spec),
		"sort":     string(sortKey),
	})

	ucLogger.Info("Use case started", nil)

	records, err := uc.source.LoadAll(ctx)
	if err != nil {
		ucLogger.Error("Property source returned an error", err, nil)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Без критериев фильтровать нечего, Sort все равно возвращает копию
	visible := records
	if !spec.IsEmpty() {
		visible = filterengine.Filter(records, spec)
	}
	ordered := filterengine.Sort(visible, sortKey)
	count := filterengine.CountVisible(ordered)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_records": len(records),
		"visible":       count,
	})

	return &domain.CatalogPage{
		Objects: ordered,
		Count:   count,
		SortKey: sortKey,
	}, nil
}

// describeSpec готовит фильтр к логированию: +Inf не сериализуется в JSON (fluent, slog JSON).
func describeSpec(spec domain.FilterSpec) port.Fields {
	if spec.IsEmpty() {
		return port.Fields{"empty": true}
	}
	fields := port.Fields{
		"type":       string(spec.PropertyType),
		"operation":  string(spec.OperationType),
		"price_from": spec.PriceFrom,
		"location":   spec.LocationQuery,
	}
	if upper := spec.UpperBound(); !math.IsInf(upper, 1) {
		fields["price_to"] = upper
	}
	if spec.RoomCount != nil {
		fields["rooms"] = *spec.RoomCount
	}
	return fields
}
