package domain

import (
	"math"
	"strconv"
	"strings"
)

// RoomsOrMore - значение фильтра комнат, означающее "4 и более".
// Для записи это обычное количество комнат.
const RoomsOrMore = 4

// FilterSpec - набор критериев, выбранных пользователем.
// Пустые строки и nil означают "любое значение", PriceTo == 0 - "без верхней границы",
// так что нулевое значение FilterSpec{} пропускает все записи.
type FilterSpec struct {
	PropertyType  PropertyType
	OperationType OperationType
	PriceFrom     float64
	PriceTo       float64
	RoomCount     *int
	LocationQuery string
}

// NewFilterSpec возвращает спецификацию, которая пропускает все записи.
func NewFilterSpec() FilterSpec {
	return FilterSpec{
		PriceFrom: 0,
		PriceTo:   math.Inf(1),
	}
}

// UpperBound - верхняя граница цены, +Inf если она не задана.
func (f FilterSpec) UpperBound() float64 {
	if f.PriceTo == 0 {
		return math.Inf(1)
	}
	return f.PriceTo
}

// IsEmpty сообщает, что ни один критерий не задан.
func (f FilterSpec) IsEmpty() bool {
	return f.PropertyType == "" &&
		f.OperationType == "" &&
		f.PriceFrom <= 0 &&
		math.IsInf(f.UpperBound(), 1) &&
		f.RoomCount == nil &&
		f.LocationQuery == ""
}

// RawFilterValues - значения фильтров в том виде, в каком они пришли из формы или URL.
type RawFilterValues struct {
	PropertyType  string
	OperationType string
	PriceFrom     string
	PriceTo       string
	Rooms         string
	Location      string
}

// ParseFilterSpec собирает FilterSpec из сырых строк.
// Ошибок нет: некорректные значения превращаются в самые мягкие значения по умолчанию
// (priceFrom -> 0, priceTo -> +Inf, rooms -> любое количество).
func ParseFilterSpec(raw RawFilterValues) FilterSpec {
	spec := NewFilterSpec()

	spec.PropertyType = PropertyType(strings.TrimSpace(raw.PropertyType))
	spec.OperationType = OperationType(strings.TrimSpace(raw.OperationType))

	if v, ok := parseLeadingInt(raw.PriceFrom); ok && v != 0 {
		spec.PriceFrom = float64(v)
	}
	if v, ok := parseLeadingInt(raw.PriceTo); ok && v != 0 {
		spec.PriceTo = float64(v)
	}

	if v, ok := parseLeadingInt(raw.Rooms); ok {
		rooms := int(v)
		spec.RoomCount = &rooms
	}

	spec.LocationQuery = raw.Location

	return spec
}

// parseLeadingInt разбирает целое число в начале строки ("5000000", " 12 ", "3 комнаты").
// Дробная часть и хвост отбрасываются, строка без цифр в начале считается отсутствующим значением.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
