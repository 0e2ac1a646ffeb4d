package domain

// CatalogPage - результат поиска по каталогу.
type CatalogPage struct {
	Objects []PropertyRecord
	Count   int
	SortKey SortKey
}

// DictionaryItem - элемент справочника для выпадающих списков.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}
