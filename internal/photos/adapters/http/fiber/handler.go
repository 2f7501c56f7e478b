package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"gallery-analytics-service/internal/photos/core/domain"
	"gallery-analytics-service/internal/photos/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type GetPhotosUseCase interface {
	List(ctx context.Context) ([]domain.Photo, error)
	Get(ctx context.Context, rawID string) (domain.Photo, error)
}

// ViewTracker receives the analytics side effects of reading the catalog.
type ViewTracker interface {
	RecordPageView(ctx context.Context, clientID string)
	RecordPhotoView(ctx context.Context, photoID, photoTitle string)
}

type PhotoHandler struct {
	uc      GetPhotosUseCase
	tracker ViewTracker
}

func NewPhotoHandler(uc GetPhotosUseCase, tracker ViewTracker) *PhotoHandler {
	return &PhotoHandler{uc: uc, tracker: tracker}
}

// ListPhotos godoc
// @Summary List gallery photos
// @Description Returns every photo and counts a page view for the caller
// @Tags Photos
// @Produce json
// @Success 200 {array} PhotoResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/photos [get]
func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	photos, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	h.tracker.RecordPageView(c.UserContext(), utils.CopyString(c.IP()))

	resp := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, toPhotoResponse(p))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetPhoto godoc
// @Summary Get a single photo
// @Description Returns one photo and counts a photo view
// @Tags Photos
// @Produce json
// @Param id path int true "Photo id"
// @Success 200 {object} PhotoResponse
// @Failure 404 {object} NotFoundResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/photos/{id} [get]
func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	photo, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhotoNotFound):
			return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
				Error: "Photo not found",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	h.tracker.RecordPhotoView(c.UserContext(), strconv.Itoa(photo.ID), photo.Title)

	return c.Status(http.StatusOK).JSON(toPhotoResponse(photo))
}

func toPhotoResponse(p domain.Photo) PhotoResponse {
	return PhotoResponse{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Description: p.Description,
		Image:       p.Image,
		Explorer:    p.Explorer,
		Date:        p.Date,
		Elevation:   p.Elevation,
		Temperature: p.Temperature,
		Humidity:    p.Humidity,
		Depth:       p.Depth,
	}
}
