package usecase

import (
	"context"
	"sync"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type mockPropertySource struct {
	mock.Mock
}

func (m *mockPropertySource) LoadAll(ctx context.Context) ([]domain.PropertyRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.PropertyRecord)
	return records, args.Error(1)
}

type mockContactValidator struct {
	mock.Mock
}

func (m *mockContactValidator) Validate(req domain.ContactRequest) error {
	return m.Called(req).Error(0)
}

type mockContactPublisher struct {
	mock.Mock
}

func (m *mockContactPublisher) PublishContactRequest(ctx context.Context, req domain.AcceptedContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

// memorySelectionStore - простое хранилище для тестов сценариев избранного и сравнения
type memorySelectionStore struct {
	mu    sync.Mutex
	lists map[string][]string
	err   error
}

func newMemorySelectionStore() *memorySelectionStore {
	return &memorySelectionStore{lists: make(map[string][]string)}
}

func (s *memorySelectionStore) key(visitorID string, list domain.SelectionList) string {
	return visitorID + "/" + string(list)
}

func (s *memorySelectionStore) Get(ctx context.Context, visitorID string, list domain.SelectionList) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]string(nil), s.lists[s.key(visitorID, list)]...), nil
}

func (s *memorySelectionStore) Update(ctx context.Context, visitorID string, list domain.SelectionList, mutate port.SelectionMutation) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	current := append([]string(nil), s.lists[s.key(visitorID, list)]...)
	next, err := mutate(current)
	if err != nil {
		return nil, err
	}
	s.lists[s.key(visitorID, list)] = next
	return append([]string(nil), next...), nil
}
