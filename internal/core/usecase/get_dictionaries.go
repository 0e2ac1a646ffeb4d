package usecase

import (
	"context"
	"strconv"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

const (
	DictionaryPropertyTypes  = "property_types"
	DictionaryOperationTypes = "operation_types"
	DictionaryRooms          = "rooms"
	DictionarySortKeys       = "sort_keys"
)

var propertyTypeNames = map[domain.PropertyType]string{
	domain.PropertyTypeApartment:  "Квартира",
	domain.PropertyTypeHouse:      "Дом",
	domain.PropertyTypeCommercial: "Коммерческая",
	domain.PropertyTypeLand:       "Участок",
}

var operationTypeNames = map[domain.OperationType]string{
	domain.OperationTypeSale: "Продажа",
	domain.OperationTypeRent: "Аренда",
}

var sortKeyNames = map[domain.SortKey]string{
	domain.SortByDate:      "По дате",
	domain.SortByPriceAsc:  "Цена: по возрастанию",
	domain.SortByPriceDesc: "Цена: по убыванию",
	domain.SortByArea:      "По площади",
}

type GetDictionariesUseCase struct {
	dictionaries map[string][]domain.DictionaryItem
}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{dictionaries: buildDictionaries()}
}

// Execute возвращает запрошенные справочники; пустой список имен означает "все".
// Неизвестные имена пропускаются.
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDictionaries",
		"names":    names,
	})

	if len(names) == 0 {
		ucLogger.Debug("Returning all dictionaries", nil)
		return uc.dictionaries, nil
	}

	result := make(map[string][]domain.DictionaryItem, len(names))
	for _, name := range names {
		items, ok := uc.dictionaries[name]
		if !ok {
			ucLogger.Warn("Unknown dictionary requested", port.Fields{"name": name})
			continue
		}
		result[name] = items
	}

	return result, nil
}

func buildDictionaries() map[string][]domain.DictionaryItem {
	dicts := make(map[string][]domain.DictionaryItem)

	for _, t := range domain.PropertyTypes {
		dicts[DictionaryPropertyTypes] = append(dicts[DictionaryPropertyTypes],
			domain.DictionaryItem{SystemName: string(t), DisplayName: propertyTypeNames[t]})
	}
	for _, o := range domain.OperationTypes {
		dicts[DictionaryOperationTypes] = append(dicts[DictionaryOperationTypes],
			domain.DictionaryItem{SystemName: string(o), DisplayName: operationTypeNames[o]})
	}
	for rooms := 1; rooms <= domain.RoomsOrMore; rooms++ {
		value := strconv.Itoa(rooms)
		display := value
		if rooms == domain.RoomsOrMore {
			display = value + "+"
		}
		dicts[DictionaryRooms] = append(dicts[DictionaryRooms],
			domain.DictionaryItem{SystemName: value, DisplayName: display})
	}
	for _, k := range domain.SortKeys {
		dicts[DictionarySortKeys] = append(dicts[DictionarySortKeys],
			domain.DictionaryItem{SystemName: string(k), DisplayName: sortKeyNames[k]})
	}

	return dicts
}
