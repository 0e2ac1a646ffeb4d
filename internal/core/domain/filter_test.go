package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSpec_EmptyValuesAreWildcards(t *testing.T) {
	spec := ParseFilterSpec(RawFilterValues{})

	assert.True(t, spec.IsEmpty())
	assert.Equal(t, 0.0, spec.PriceFrom)
	assert.True(t, math.IsInf(spec.PriceTo, 1))
	assert.Nil(t, spec.RoomCount)
}

func TestParseFilterSpec_MalformedNumbersDegrade(t *testing.T) {
	spec := ParseFilterSpec(RawFilterValues{
		PriceFrom: "abc",
		PriceTo:   "not a number",
		Rooms:     "many",
	})

	assert.Equal(t, 0.0, spec.PriceFrom)
	assert.True(t, math.IsInf(spec.PriceTo, 1))
	assert.Nil(t, spec.RoomCount)
}

func TestParseFilterSpec_ZeroUpperBoundMeansNoBound(t *testing.T) {
	spec := ParseFilterSpec(RawFilterValues{PriceTo: "0"})

	assert.True(t, math.IsInf(spec.PriceTo, 1))
}

func TestFilterSpec_ZeroValueHasNoCriteria(t *testing.T) {
	var spec FilterSpec

	assert.True(t, spec.IsEmpty())
	assert.True(t, math.IsInf(spec.UpperBound(), 1))

	spec.PriceTo = 500
	assert.False(t, spec.IsEmpty())
	assert.Equal(t, 500.0, spec.UpperBound())
}

func TestParseFilterSpec_ParsesLeadingDigits(t *testing.T) {
	spec := ParseFilterSpec(RawFilterValues{
		PropertyType:  " house ",
		OperationType: "rent",
		PriceFrom:     "1500000.75",
		PriceTo:       " 9000000 руб",
		Rooms:         "4",
		Location:      "Центр",
	})

	assert.Equal(t, PropertyTypeHouse, spec.PropertyType)
	assert.Equal(t, OperationTypeRent, spec.OperationType)
	assert.Equal(t, 1500000.0, spec.PriceFrom)
	assert.Equal(t, 9000000.0, spec.PriceTo)
	require.NotNil(t, spec.RoomCount)
	assert.Equal(t, RoomsOrMore, *spec.RoomCount)
	assert.Equal(t, "Центр", spec.LocationQuery)
	assert.False(t, spec.IsEmpty())
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortByPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortByArea, ParseSortKey("area"))
	assert.Equal(t, SortByDate, ParseSortKey("date"))
	assert.Equal(t, SortByDate, ParseSortKey(""))
	assert.Equal(t, SortByDate, ParseSortKey("cheapest"))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PropertyTypeLand.IsValid())
	assert.False(t, PropertyType("castle").IsValid())
	assert.True(t, OperationTypeSale.IsValid())
	assert.False(t, OperationType("swap").IsValid())
}
