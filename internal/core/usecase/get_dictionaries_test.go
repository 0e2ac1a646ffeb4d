package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDictionaries_All(t *testing.T) {
	dicts, err := NewGetDictionariesUseCase().Execute(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, dicts, 4)
	assert.Len(t, dicts[DictionaryPropertyTypes], 4)
	assert.Len(t, dicts[DictionaryOperationTypes], 2)
	assert.Len(t, dicts[DictionarySortKeys], 4)

	rooms := dicts[DictionaryRooms]
	require.Len(t, rooms, 4)
	assert.Equal(t, "4", rooms[3].SystemName)
	assert.Equal(t, "4+", rooms[3].DisplayName)
}

func TestGetDictionaries_SelectedAndUnknown(t *testing.T) {
	dicts, err := NewGetDictionariesUseCase().Execute(context.Background(), []string{DictionarySortKeys, "currencies"})
	require.NoError(t, err)

	require.Len(t, dicts, 1)
	assert.Equal(t, "date", dicts[DictionarySortKeys][0].SystemName)
	assert.Equal(t, "По дате", dicts[DictionarySortKeys][0].DisplayName)
}
