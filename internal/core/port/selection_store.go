package port

import (
	"context"
	"catalog-service/internal/core/domain"
)

// SelectionMutation получает текущий список и возвращает новый.
// Ошибка отменяет изменение.
type SelectionMutation func(current []string) ([]string, error)

// SelectionStorePort - хранилище ключ-значение посетителя (избранное и сравнение).
// Get для отсутствующего ключа возвращает пустой список без ошибки.
// Update выполняет чтение-изменение-запись атомарно для пары (visitorID, list).
type SelectionStorePort interface {
	Get(ctx context.Context, visitorID string, list domain.SelectionList) ([]string, error)
	Update(ctx context.Context, visitorID string, list domain.SelectionList, mutate SelectionMutation) ([]string, error)
}
