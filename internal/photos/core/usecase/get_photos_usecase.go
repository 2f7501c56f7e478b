package usecase

import (
	"context"
	"errors"
	"strconv"

	"gallery-analytics-service/internal/photos/core/domain"
	"gallery-analytics-service/internal/photos/core/ports"
)

var ErrPhotoNotFound = errors.New("photo not found")

type GetPhotosUseCase struct {
	catalog ports.PhotoCatalogPort
}

func NewGetPhotosUseCase(catalog ports.PhotoCatalogPort) *GetPhotosUseCase {
	return &GetPhotosUseCase{catalog: catalog}
}

func (uc *GetPhotosUseCase) List(ctx context.Context) ([]domain.Photo, error) {
	return uc.catalog.List(ctx)
}

// Get resolves a raw path id. Anything that is not a positive integer is treated as unknown.
func (uc *GetPhotosUseCase) Get(ctx context.Context, rawID string) (domain.Photo, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return domain.Photo{}, ErrPhotoNotFound
	}

	photo, found, err := uc.catalog.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, err
	}
	if !found {
		return domain.Photo{}, ErrPhotoNotFound
	}
	return photo, nil
}
