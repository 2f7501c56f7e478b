package ports

import (
	"context"

	"gallery-analytics-service/internal/photos/core/domain"
)

type PhotoCatalogPort interface {
	// List returns every photo in catalog order.
	List(ctx context.Context) ([]domain.Photo, error)

	// FindByID returns found = false when no photo has the given id.
	FindByID(ctx context.Context, id int) (photo domain.Photo, found bool, err error)
}
