package port

import (
	"context"
	"catalog-service/internal/core/domain"
)

// PropertySourcePort отдает полный набор карточек каталога.
// Каждый поиск заново читает все записи, кэша и индексов нет.
type PropertySourcePort interface {
	LoadAll(ctx context.Context) ([]domain.PropertyRecord, error)
}
