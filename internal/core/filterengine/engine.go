// Package filterengine отбирает и упорядочивает карточки каталога.
// Все функции чистые: входные записи не изменяются, общего состояния нет.
package filterengine

import (
	"sort"
	"strings"

	"catalog-service/internal/core/domain"

	"golang.org/x/text/cases"
)

// Filter возвращает записи, для которых выполняются все заданные критерии,
// сохраняя их исходный относительный порядок.
func Filter(records []domain.PropertyRecord, spec domain.FilterSpec) []domain.PropertyRecord {
	// Запрос приводится к нижнему регистру один раз на весь проход
	query := foldLocation(spec.LocationQuery)

	result := make([]domain.PropertyRecord, 0, len(records))
	for _, rec := range records {
		if matches(rec, spec, query) {
			result = append(result, rec)
		}
	}
	return result
}

// Matches проверяет одну запись.
func Matches(rec domain.PropertyRecord, spec domain.FilterSpec) bool {
	return matches(rec, spec, foldLocation(spec.LocationQuery))
}

func matches(rec domain.PropertyRecord, spec domain.FilterSpec, foldedQuery string) bool {
	// Тип и операция сравниваются точно: значения берутся из фиксированного словаря UI
	if spec.PropertyType != "" && rec.PropertyType != spec.PropertyType {
		return false
	}
	if spec.OperationType != "" && rec.OperationType != spec.OperationType {
		return false
	}

	if rec.Price < spec.PriceFrom || rec.Price > spec.UpperBound() {
		return false
	}

	if !matchRooms(rec.RoomCount, spec.RoomCount) {
		return false
	}

	if foldedQuery != "" && !strings.Contains(foldLocation(rec.LocationText), foldedQuery) {
		return false
	}

	return true
}

// matchRooms: 4 в фильтре означает "4 и более", любое другое значение - точное совпадение.
func matchRooms(recordRooms int, filterRooms *int) bool {
	if filterRooms == nil {
		return true
	}
	if *filterRooms == domain.RoomsOrMore {
		return recordRooms >= domain.RoomsOrMore
	}
	return recordRooms == *filterRooms
}

func foldLocation(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser хранит состояние, поэтому создается на каждый вызов
	return cases.Fold().String(s)
}

// Sort возвращает новый срез с видимыми записями в порядке key.
// Сортировка стабильная: равные по ключу записи остаются в исходном порядке.
// Фильтрация здесь не выполняется, вызывающий передает уже отобранные записи.
func Sort(records []domain.PropertyRecord, key domain.SortKey) []domain.PropertyRecord {
	sorted := make([]domain.PropertyRecord, len(records))
	copy(sorted, records)

	var less func(a, b domain.PropertyRecord) bool
	switch key {
	case domain.SortByPriceAsc:
		less = func(a, b domain.PropertyRecord) bool { return a.Price < b.Price }
	case domain.SortByPriceDesc:
		less = func(a, b domain.PropertyRecord) bool { return a.Price > b.Price }
	case domain.SortByArea:
		less = func(a, b domain.PropertyRecord) bool { return a.AreaSqMeters > b.AreaSqMeters }
	default:
		// SortByDate и неизвестные ключи - порядок добавления
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// CountVisible - количество записей после фильтрации, его показывает счетчик результатов.
func CountVisible(records []domain.PropertyRecord) int {
	return len(records)
}
