package filterengine

import (
	"fmt"
	"math"
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func ids(records []domain.PropertyRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func sampleRecords() []domain.PropertyRecord {
	return []domain.PropertyRecord{
		{ID: "1", Price: 5000000, RoomCount: 2, PropertyType: "apartment", OperationType: "sale", LocationText: "Downtown", AreaSqMeters: 54},
		{ID: "2", Price: 12000000, RoomCount: 4, PropertyType: "house", OperationType: "sale", LocationText: "Suburb", AreaSqMeters: 180},
		{ID: "3", Price: 8000000, RoomCount: 1, PropertyType: "apartment", OperationType: "rent", LocationText: "Downtown", AreaSqMeters: 38},
	}
}

func TestFilter_EmptySpecReturnsAllRecords(t *testing.T) {
	records := sampleRecords()

	result := Filter(records, domain.NewFilterSpec())

	assert.Equal(t, records, result)
}

func TestFilter_ZeroValueSpecReturnsAllRecords(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, records, Filter(records, domain.FilterSpec{}))
	assert.True(t, Matches(records[1], domain.FilterSpec{}))

	spec := domain.FilterSpec{PropertyType: domain.PropertyTypeApartment}
	assert.Equal(t, []string{"1", "3"}, ids(Filter(records, spec)))
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, domain.NewFilterSpec()))
	assert.Equal(t, 0, CountVisible(Filter(nil, domain.NewFilterSpec())))
}

func TestFilter_TypeAndPriceRange(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.PropertyType = domain.PropertyTypeApartment
	spec.PriceFrom = 0
	spec.PriceTo = 10000000

	result := Filter(sampleRecords(), spec)

	assert.Equal(t, []string{"1", "3"}, ids(result))
	assert.Equal(t, 2, CountVisible(result))
}

func TestFilter_OperationType(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.OperationType = domain.OperationTypeRent

	assert.Equal(t, []string{"3"}, ids(Filter(sampleRecords(), spec)))
}

func TestFilter_EnumsAreCaseSensitive(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.PropertyType = "Apartment"

	assert.Empty(t, Filter(sampleRecords(), spec))
}

func TestFilter_PriceBoundsAreInclusive(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.PriceFrom = 5000000
	spec.PriceTo = 8000000

	assert.Equal(t, []string{"1", "3"}, ids(Filter(sampleRecords(), spec)))
}

func TestFilter_InvertedPriceRangeIsEmpty(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.PriceFrom = 9000000
	spec.PriceTo = 1000000

	result := Filter(sampleRecords(), spec)

	assert.Empty(t, result)
	assert.Equal(t, 0, CountVisible(result))
}

func TestFilter_RoomsFourMeansFourOrMore(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.RoomCount = intPtr(4)

	assert.Equal(t, []string{"2"}, ids(Filter(sampleRecords(), spec)))

	assert.True(t, Matches(domain.PropertyRecord{ID: "x", RoomCount: 10}, spec))
	assert.False(t, Matches(domain.PropertyRecord{ID: "y", RoomCount: 3}, spec))
}

func TestFilter_RoomsOtherValuesAreExact(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.RoomCount = intPtr(2)
	assert.Equal(t, []string{"1"}, ids(Filter(sampleRecords(), spec)))

	// значения вне 1-4 тоже сравниваются точно
	spec.RoomCount = intPtr(9)
	assert.False(t, Matches(domain.PropertyRecord{RoomCount: 10}, spec))
	assert.True(t, Matches(domain.PropertyRecord{RoomCount: 9}, spec))
}

func TestFilter_LocationIsCaseInsensitiveSubstring(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.LocationQuery = "cent"

	assert.True(t, Matches(domain.PropertyRecord{LocationText: "Central District"}, spec))

	spec.LocationQuery = "TOWN"
	assert.Equal(t, []string{"1", "3"}, ids(Filter(sampleRecords(), spec)))

	spec.LocationQuery = "Suburb Park"
	assert.Empty(t, Filter(sampleRecords(), spec))
}

func TestFilter_LocationFoldsCyrillic(t *testing.T) {
	spec := domain.NewFilterSpec()
	spec.LocationQuery = "ЦЕНТР"

	assert.True(t, Matches(domain.PropertyRecord{LocationText: "Москва, Центральный район"}, spec))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	snapshot := sampleRecords()

	spec := domain.NewFilterSpec()
	spec.LocationQuery = "down"
	_ = Filter(records, spec)
	_ = Sort(records, domain.SortByPriceDesc)

	assert.Equal(t, snapshot, records)
}

func TestFilter_CountMatchesLength(t *testing.T) {
	specs := []domain.FilterSpec{
		domain.NewFilterSpec(),
		{PropertyType: "house", PriceTo: math.Inf(1)},
		{PriceFrom: 6000000, PriceTo: math.Inf(1)},
		{PriceTo: math.Inf(1), RoomCount: intPtr(1)},
		{PriceTo: 0},
	}

	for i, spec := range specs {
		t.Run(fmt.Sprintf("spec_%d", i), func(t *testing.T) {
			result := Filter(sampleRecords(), spec)
			assert.Equal(t, len(result), CountVisible(result))
		})
	}
}

func TestSort_ScenarioPriceAsc(t *testing.T) {
	r := sampleRecords()
	input := []domain.PropertyRecord{r[1], r[0], r[2]}

	assert.Equal(t, []string{"1", "3", "2"}, ids(Sort(input, domain.SortByPriceAsc)))
}

func TestSort_AscAndDescAreReversedWithoutTies(t *testing.T) {
	records := sampleRecords()

	asc := ids(Sort(records, domain.SortByPriceAsc))
	desc := ids(Sort(records, domain.SortByPriceDesc))

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSort_IsStableWithTies(t *testing.T) {
	records := []domain.PropertyRecord{
		{ID: "a", Price: 200, AreaSqMeters: 50},
		{ID: "b", Price: 100, AreaSqMeters: 70},
		{ID: "c", Price: 200, AreaSqMeters: 70},
		{ID: "d", Price: 100, AreaSqMeters: 50},
		{ID: "e", Price: 200, AreaSqMeters: 90},
	}

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(Sort(records, domain.SortByPriceAsc)))
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(Sort(records, domain.SortByPriceDesc)))
	assert.Equal(t, []string{"e", "b", "c", "a", "d"}, ids(Sort(records, domain.SortByArea)))
}

func TestSort_DateKeepsInsertionOrder(t *testing.T) {
	r := sampleRecords()
	input := []domain.PropertyRecord{r[2], r[0], r[1]}

	result := Sort(input, domain.SortByDate)

	assert.Equal(t, []string{"3", "1", "2"}, ids(result))

	// возвращается копия, а не исходный срез
	result[0].ID = "changed"
	assert.Equal(t, "3", input[0].ID)
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, ids(Sort(sampleRecords(), domain.SortKey("by-magic"))))
}
