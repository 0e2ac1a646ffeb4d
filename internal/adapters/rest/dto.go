package rest

import (
	"catalog-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const (
	TraceIDHeader   = "X-Trace-ID"
	VisitorIDHeader = "X-Visitor-ID"

	// Ячейка около 150 м, карта группирует по ней метки
	cardGeohashPrecision = 7
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse - ответ 422 с сообщениями под полями формы
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// PropertyCardResponse - DTO карточки объекта в каталоге.
type PropertyCardResponse struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Operation string   `json:"operation"`
	Price     float64  `json:"price"`
	Rooms     int      `json:"rooms"`
	Location  string   `json:"location"`
	Area      float64  `json:"area"`
	Title     string   `json:"title,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Geohash   string   `json:"geohash,omitempty"`
}

type CatalogResponse struct {
	Count   int                    `json:"count"`
	Sort    string                 `json:"sort"`
	Objects []PropertyCardResponse `json:"objects"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionaryItemsResponse map[string][]DictionaryItemResponse

type FavoriteToggleResponse struct {
	PropertyID  string   `json:"property_id"`
	IsFavorite  bool     `json:"is_favorite"`
	FavoriteIDs []string `json:"favorite_ids"`
}

type SelectionResponse struct {
	List        string   `json:"list"`
	PropertyIDs []string `json:"property_ids"`
}

type ContactRequestAcceptedResponse struct {
	RequestID  string `json:"request_id"`
	ReceivedAt string `json:"received_at"`
}

func toPropertyCard(rec domain.PropertyRecord) PropertyCardResponse {
	card := PropertyCardResponse{
		ID:        rec.ID,
		Type:      string(rec.PropertyType),
		Operation: string(rec.OperationType),
		Price:     rec.Price,
		Rooms:     rec.RoomCount,
		Location:  rec.LocationText,
		Area:      rec.AreaSqMeters,
		Title:     rec.Title,
		ImageURL:  rec.ImageURL,
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
	}
	if rec.HasCoordinates() {
		card.Geohash = geohash.EncodeWithPrecision(*rec.Latitude, *rec.Longitude, cardGeohashPrecision)
	}
	return card
}

func toCatalogResponse(page *domain.CatalogPage) CatalogResponse {
	objects := make([]PropertyCardResponse, 0, len(page.Objects))
	for _, rec := range page.Objects {
		objects = append(objects, toPropertyCard(rec))
	}
	return CatalogResponse{
		Count:   page.Count,
		Sort:    string(page.SortKey),
		Objects: objects,
	}
}

// nonNil нужен, чтобы пустой список уходил как [], а не null
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
