package domain

import "strings"

// SortKey - режим упорядочивания уже отфильтрованного списка.
type SortKey string

const (
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
	SortByArea      SortKey = "area" // по убыванию площади
	SortByDate      SortKey = "date" // порядок добавления, сортировка не меняет список
)

var SortKeys = []SortKey{SortByDate, SortByPriceAsc, SortByPriceDesc, SortByArea}

// ParseSortKey возвращает режим сортировки; неизвестное значение означает порядок добавления.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.TrimSpace(s))
	for _, k := range SortKeys {
		if key == k {
			return key
		}
	}
	return SortByDate
}
