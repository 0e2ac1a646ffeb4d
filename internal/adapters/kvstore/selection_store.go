package kvstore

import (
	"context"
	"sync"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxVisitors = 10000
	DefaultVisitorTTL  = 7 * 24 * time.Hour
)

// StoreConfig ограничивает память хранилища: число посетителей и время жизни их списков.
type StoreConfig struct {
	MaxVisitors int
	VisitorTTL  time.Duration
}

// visitorLists - все списки одного посетителя (избранное, сравнение)
type visitorLists map[domain.SelectionList][]string

// SelectionStore - хранилище ключ-значение в памяти процесса.
// Ключ - посетитель, значение - его списки. Давно неактивные и самые старые
// посетители вытесняются, когда превышен MaxVisitors.
type SelectionStore struct {
	mu       sync.Mutex
	visitors *expirable.LRU[string, visitorLists]
}

func NewSelectionStore(cfg StoreConfig) *SelectionStore {
	if cfg.MaxVisitors <= 0 {
		cfg.MaxVisitors = DefaultMaxVisitors
	}
	if cfg.VisitorTTL <= 0 {
		cfg.VisitorTTL = DefaultVisitorTTL
	}
	return &SelectionStore{
		visitors: expirable.NewLRU[string, visitorLists](cfg.MaxVisitors, nil, cfg.VisitorTTL),
	}
}

func (s *SelectionStore) Get(ctx context.Context, visitorID string, list domain.SelectionList) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lists, _ := s.visitors.Peek(visitorID)
	return cloneIDs(lists[list]), nil
}

// Update вызывает mutate под блокировкой: параллельные запросы одного посетителя
// не теряют изменения друг друга. Запись продлевает жизнь списков посетителя.
func (s *SelectionStore) Update(ctx context.Context, visitorID string, list domain.SelectionList, mutate port.SelectionMutation) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "SelectionStore",
		"visitor_id": visitorID,
		"list":       string(list),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.visitors.Get(visitorID)
	updated, err := mutate(cloneIDs(current[list]))
	if err != nil {
		return nil, err
	}

	next := make(visitorLists, len(current)+1)
	for name, ids := range current {
		next[name] = ids
	}
	if len(updated) == 0 {
		delete(next, list)
	} else {
		next[list] = cloneIDs(updated)
	}

	if len(next) == 0 {
		s.visitors.Remove(visitorID)
	} else if evicted := s.visitors.Add(visitorID, next); evicted {
		logger.Debug("Least recently used visitor evicted", port.Fields{"visitors": s.visitors.Len()})
	}

	logger.Debug("Selection updated", port.Fields{"count": len(updated)})
	return cloneIDs(updated), nil
}

// Len - число посетителей с непустыми списками
func (s *SelectionStore) Len() int {
	return s.visitors.Len()
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
