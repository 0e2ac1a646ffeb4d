package filesource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// catalogFileDTO - формат файла каталога (схема documents/catalog-file/v1.json).
type catalogFileDTO struct {
	Properties []propertyDTO `json:"properties"`
}

type propertyDTO struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Operation string   `json:"operation"`
	Price     float64  `json:"price"`
	Rooms     int      `json:"rooms"`
	Location  string   `json:"location"`
	Area      float64  `json:"area"`
	Title     string   `json:"title"`
	ImageURL  string   `json:"image_url"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// PropertyFileSource читает каталог из JSON-файла при каждом запросе,
// поэтому правки файла видны без перезапуска.
type PropertyFileSource struct {
	path string
}

func NewPropertyFileSource(path string) (*PropertyFileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog file path cannot be empty")
	}
	return &PropertyFileSource{path: path}, nil
}

func (s *PropertyFileSource) LoadAll(ctx context.Context) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyFileSource",
		"path":      s.path,
	})

	body, err := os.ReadFile(s.path)
	if err != nil {
		logger.Error("Failed to read catalog file", err, nil)
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	records, err := ParseCatalog(body)
	if err != nil {
		logger.Error("Catalog file is invalid", err, nil)
		return nil, err
	}

	logger.Debug("Catalog file loaded", port.Fields{"records": len(records)})
	return records, nil
}

// ParseCatalog проверяет документ по схеме и переводит его в доменные записи.
func ParseCatalog(body []byte) ([]domain.PropertyRecord, error) {
	if err := contracts.Validate(contracts.CatalogFileDocument, contracts.SchemaVersionV1, body); err != nil {
		return nil, fmt.Errorf("catalog document rejected: %w", err)
	}

	var doc catalogFileDTO
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}

	records := make([]domain.PropertyRecord, 0, len(doc.Properties))
	seen := make(map[string]struct{}, len(doc.Properties))
	for _, p := range doc.Properties {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate property id %q in catalog", p.ID)
		}
		seen[p.ID] = struct{}{}

		records = append(records, domain.PropertyRecord{
			ID:            p.ID,
			PropertyType:  domain.PropertyType(p.Type),
			OperationType: domain.OperationType(p.Operation),
			Price:         p.Price,
			RoomCount:     p.Rooms,
			LocationText:  p.Location,
			AreaSqMeters:  p.Area,
			Title:         p.Title,
			ImageURL:      p.ImageURL,
			Latitude:      p.Latitude,
			Longitude:     p.Longitude,
		})
	}
	return records, nil
}
