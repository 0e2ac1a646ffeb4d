package filesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{"properties": [
	{"id": "1", "type": "apartment", "operation": "sale", "price": 5000000, "rooms": 2, "location": "Downtown", "area": 54, "title": "2-комн. квартира", "latitude": 55.75, "longitude": 37.61},
	{"id": "2", "type": "house", "operation": "sale", "price": 12000000, "rooms": 4, "location": "Suburb", "area": 180}
]}`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPropertyFileSource_LoadAll(t *testing.T) {
	source, err := NewPropertyFileSource(writeCatalog(t, catalogJSON))
	require.NoError(t, err)

	records, err := source.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, domain.PropertyTypeApartment, first.PropertyType)
	assert.Equal(t, domain.OperationTypeSale, first.OperationType)
	assert.Equal(t, 5000000.0, first.Price)
	assert.Equal(t, 2, first.RoomCount)
	assert.Equal(t, 54.0, first.AreaSqMeters)
	assert.True(t, first.HasCoordinates())
	assert.False(t, records[1].HasCoordinates())
}

func TestPropertyFileSource_RejectsInvalidDocument(t *testing.T) {
	source, err := NewPropertyFileSource(writeCatalog(t, `{"properties": [{"id": "1"}]}`))
	require.NoError(t, err)

	_, err = source.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestPropertyFileSource_RejectsDuplicateIDs(t *testing.T) {
	dup := `{"properties": [
		{"id": "1", "type": "land", "operation": "sale", "price": 1, "rooms": 0, "location": "A", "area": 600},
		{"id": "1", "type": "land", "operation": "sale", "price": 2, "rooms": 0, "location": "B", "area": 800}
	]}`

	_, err := ParseCatalog([]byte(dup))
	assert.ErrorContains(t, err, "duplicate")
}

func TestPropertyFileSource_MissingFile(t *testing.T) {
	source, err := NewPropertyFileSource(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, err = source.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestNewPropertyFileSource_EmptyPath(t *testing.T) {
	_, err := NewPropertyFileSource("")
	assert.Error(t, err)
}

func TestShippedCatalogIsValid(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("..", "..", "..", "data", "catalog.json"))
	require.NoError(t, err)

	records, err := ParseCatalog(body)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}
