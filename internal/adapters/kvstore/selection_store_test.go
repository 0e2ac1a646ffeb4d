package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendID(id string) func([]string) ([]string, error) {
	return func(current []string) ([]string, error) {
		return append(current, id), nil
	}
}

func TestSelectionStore_MissingKeyIsEmpty(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})

	ids, err := store.Get(context.Background(), "visitor", domain.SelectionFavorites)

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSelectionStore_ListsAreIsolated(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx := context.Background()

	_, err := store.Update(ctx, "v1", domain.SelectionFavorites, appendID("p1"))
	require.NoError(t, err)
	_, err = store.Update(ctx, "v1", domain.SelectionComparison, appendID("p2"))
	require.NoError(t, err)

	fav, _ := store.Get(ctx, "v1", domain.SelectionFavorites)
	cmp, _ := store.Get(ctx, "v1", domain.SelectionComparison)
	other, _ := store.Get(ctx, "v2", domain.SelectionFavorites)

	assert.Equal(t, []string{"p1"}, fav)
	assert.Equal(t, []string{"p2"}, cmp)
	assert.Empty(t, other)
}

func TestSelectionStore_MutationErrorKeepsState(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx := context.Background()
	_, _ = store.Update(ctx, "v", domain.SelectionComparison, appendID("p1"))

	boom := errors.New("boom")
	_, err := store.Update(ctx, "v", domain.SelectionComparison, func([]string) ([]string, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	ids, _ := store.Get(ctx, "v", domain.SelectionComparison)
	assert.Equal(t, []string{"p1"}, ids)
}

func TestSelectionStore_ReturnedSliceIsCopy(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx := context.Background()
	ids, _ := store.Update(ctx, "v", domain.SelectionFavorites, appendID("p1"))

	ids[0] = "changed"

	stored, _ := store.Get(ctx, "v", domain.SelectionFavorites)
	assert.Equal(t, []string{"p1"}, stored)
}

func TestSelectionStore_ConcurrentUpdates(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Update(ctx, "v", domain.SelectionFavorites, appendID(fmt.Sprintf("p%d", i)))
		}(i)
	}
	wg.Wait()

	ids, _ := store.Get(ctx, "v", domain.SelectionFavorites)
	assert.Len(t, ids, 50)
}

func TestSelectionStore_CancelledContext(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "v", domain.SelectionFavorites)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectionStore_EvictsLeastRecentVisitor(t *testing.T) {
	store := NewSelectionStore(StoreConfig{MaxVisitors: 3})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := store.Update(ctx, fmt.Sprintf("v%d", i), domain.SelectionFavorites, appendID("p1"))
		require.NoError(t, err)
	}

	assert.Equal(t, 3, store.Len())

	oldest, err := store.Get(ctx, "v0", domain.SelectionFavorites)
	require.NoError(t, err)
	assert.Empty(t, oldest)

	newest, err := store.Get(ctx, "v9", domain.SelectionFavorites)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, newest)
}

func TestSelectionStore_WriteKeepsVisitorRecent(t *testing.T) {
	store := NewSelectionStore(StoreConfig{MaxVisitors: 2})
	ctx := context.Background()

	_, _ = store.Update(ctx, "v1", domain.SelectionFavorites, appendID("p1"))
	_, _ = store.Update(ctx, "v2", domain.SelectionFavorites, appendID("p2"))
	_, _ = store.Update(ctx, "v1", domain.SelectionComparison, appendID("p3"))
	_, _ = store.Update(ctx, "v3", domain.SelectionFavorites, appendID("p4"))

	v1, _ := store.Get(ctx, "v1", domain.SelectionFavorites)
	v2, _ := store.Get(ctx, "v2", domain.SelectionFavorites)
	assert.Equal(t, []string{"p1"}, v1)
	assert.Empty(t, v2)
}

func TestSelectionStore_VisitorExpires(t *testing.T) {
	store := NewSelectionStore(StoreConfig{VisitorTTL: 50 * time.Millisecond})
	ctx := context.Background()

	_, err := store.Update(ctx, "v", domain.SelectionFavorites, appendID("p1"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		ids, err := store.Get(ctx, "v", domain.SelectionFavorites)
		return err == nil && len(ids) == 0
	}, time.Second, 20*time.Millisecond)
}

func TestSelectionStore_EmptyListsFreeVisitor(t *testing.T) {
	store := NewSelectionStore(StoreConfig{})
	ctx := context.Background()

	_, _ = store.Update(ctx, "v", domain.SelectionFavorites, appendID("p1"))
	require.Equal(t, 1, store.Len())

	_, err := store.Update(ctx, "v", domain.SelectionFavorites, func([]string) ([]string, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}
