package usecases_port

import (
	"context"
	"catalog-service/internal/core/domain"
)

type SearchCatalogUseCase interface {
	Execute(ctx context.Context, spec domain.FilterSpec, sortKey domain.SortKey) (*domain.CatalogPage, error)
}
