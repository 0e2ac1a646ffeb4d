package rest

import (
	"net/url"

	"catalog-service/internal/core/domain"

	"github.com/gorilla/schema"
)

// catalogQuery - параметры каталога в том виде, в каком их кладет в URL форма поиска.
// Все поля строковые: разбор чисел выполняет domain.ParseFilterSpec.
type catalogQuery struct {
	Type      string `schema:"type"`
	Operation string `schema:"operation"`
	Location  string `schema:"location"`
	PriceFrom string `schema:"priceFrom"`
	PriceTo   string `schema:"priceTo"`
	Rooms     string `schema:"rooms"`
	SortBy    string `schema:"sortBy"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// LoadCatalogQuery строит фильтр и ключ сортировки из query-параметров.
// Отсутствующие параметры означают "любое значение", сортировка по умолчанию - по дате.
// Из повторяющихся параметров учитывается первый, как в URLSearchParams.get.
func LoadCatalogQuery(values url.Values) (domain.FilterSpec, domain.SortKey, error) {
	var q catalogQuery
	if err := queryDecoder.Decode(&q, firstValues(values)); err != nil {
		return domain.FilterSpec{}, "", err
	}

	spec := domain.ParseFilterSpec(domain.RawFilterValues{
		PropertyType:  q.Type,
		OperationType: q.Operation,
		PriceFrom:     q.PriceFrom,
		PriceTo:       q.PriceTo,
		Rooms:         q.Rooms,
		Location:      q.Location,
	})

	return spec, domain.ParseSortKey(q.SortBy), nil
}

// firstValues оставляет по одному значению на ключ: schema.Decoder
// для строкового поля берет последнее.
func firstValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[:1]
		}
	}
	return out
}
