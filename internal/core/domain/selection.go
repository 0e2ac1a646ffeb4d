package domain

const (
	// MaxComparisonItems - сколько объектов можно сравнивать одновременно.
	MaxComparisonItems = 3
	// MaxFavoriteItems ограничивает избранное одного посетителя.
	MaxFavoriteItems = 100
	// MaxPropertyIDLength - идентификаторы длиннее заведомо не из каталога
	MaxPropertyIDLength = 64
)

// SelectionList - имя списка в хранилище ключ-значение посетителя.
type SelectionList string

const (
	SelectionFavorites  SelectionList = "favorites"
	SelectionComparison SelectionList = "comparison"
)

// FavoriteToggleResult - состояние избранного после переключения.
type FavoriteToggleResult struct {
	PropertyID  string
	IsFavorite  bool
	FavoriteIDs []string
}
