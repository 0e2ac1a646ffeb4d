package postgres_adapter

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier - часть pgxpool.Pool, которой пользуется адаптер
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// propertyRow - строка таблицы catalog_properties
type propertyRow struct {
	ID            string   `db:"id"`
	PropertyType  string   `db:"property_type"`
	OperationType string   `db:"operation_type"`
	Price         float64  `db:"price"`
	Rooms         int      `db:"rooms"`
	Location      string   `db:"location"`
	Area          float64  `db:"area"`
	Title         string   `db:"title"`
	ImageURL      string   `db:"image_url"`
	Latitude      *float64 `db:"latitude"`
	Longitude     *float64 `db:"longitude"`
}

// Порядок выборки - порядок публикации, на нем держится режим сортировки "по дате"
const selectCatalogQuery = `
	SELECT id, property_type, operation_type, price::float8 AS price, rooms, location,
	       area::float8 AS area, COALESCE(title, '') AS title, COALESCE(image_url, '') AS image_url,
	       latitude, longitude
	FROM catalog_properties
	WHERE is_published = true
	ORDER BY published_at, id`

// PropertySourceAdapter читает опубликованные карточки каталога из PostgreSQL.
type PropertySourceAdapter struct {
	db querier
}

func NewPropertySourceAdapter(pool *pgxpool.Pool) (*PropertySourceAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertySourceAdapter{db: pool}, nil
}

func (a *PropertySourceAdapter) LoadAll(ctx context.Context) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertySourceAdapter",
		"method":    "LoadAll",
	})

	rows, err := a.db.Query(ctx, selectCatalogQuery)
	if err != nil {
		repoLogger.Error("Failed to query catalog", err, port.Fields{"query": selectCatalogQuery})
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[propertyRow])
	if err != nil {
		repoLogger.Error("Failed to scan catalog rows", err, nil)
		return nil, fmt.Errorf("failed to scan catalog rows: %w", err)
	}

	records := make([]domain.PropertyRecord, 0, len(dbRows))
	for _, row := range dbRows {
		records = append(records, row.toDomain())
	}

	repoLogger.Debug("Catalog loaded", port.Fields{"records": len(records)})
	return records, nil
}

func (r propertyRow) toDomain() domain.PropertyRecord {
	return domain.PropertyRecord{
		ID:            r.ID,
		PropertyType:  domain.PropertyType(r.PropertyType),
		OperationType: domain.OperationType(r.OperationType),
		Price:         r.Price,
		RoomCount:     r.Rooms,
		LocationText:  r.Location,
		AreaSqMeters:  r.Area,
		Title:         r.Title,
		ImageURL:      r.ImageURL,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}
