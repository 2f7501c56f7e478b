package fiber

import (
	"context"
	"net/http"

	"gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type TrackUseCase interface {
	TrackPageView(ctx context.Context, in usecase.TrackPageViewInput)
	TrackPhotoView(ctx context.Context, in usecase.TrackPhotoViewInput)
}

type GetSnapshotUseCase interface {
	Execute(ctx context.Context) (domain.Snapshot, error)
}

type SimulateSnapshotUseCase interface {
	Execute(ctx context.Context) domain.SimulatedSnapshot
}

type AnalyticsHandler struct {
	trackUC    TrackUseCase
	snapshotUC GetSnapshotUseCase
	simulateUC SimulateSnapshotUseCase
}

func NewAnalyticsHandler(trackUC TrackUseCase, snapshotUC GetSnapshotUseCase, simulateUC SimulateSnapshotUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		trackUC:    trackUC,
		snapshotUC: snapshotUC,
		simulateUC: simulateUC,
	}
}

// TrackPageView godoc
// @Summary Track a page view
// @Description Counts a logical visit and starts or continues the given session. Missing fields are tolerated.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body TrackPageViewRequest false "Page view payload"
// @Success 200 {object} TrackResponse
// @Router /api/track/page-view [post]
func (h *AnalyticsHandler) TrackPageView(c *fiber.Ctx) error {
	var req TrackPageViewRequest
	// malformed bodies degrade to an anonymous page view
	_ = c.BodyParser(&req)

	h.trackUC.TrackPageView(c.UserContext(), usecase.TrackPageViewInput{
		Page:      req.Page,
		SessionID: req.SessionID,
		ClientID:  utils.CopyString(c.IP()),
	})

	return c.Status(http.StatusOK).JSON(TrackResponse{Success: true})
}

// TrackPhotoView godoc
// @Summary Track a photo view
// @Description Counts a photo view. The event is attached to the session only if a page view already created it.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body TrackPhotoViewRequest false "Photo view payload"
// @Success 200 {object} TrackResponse
// @Router /api/track/photo-view [post]
func (h *AnalyticsHandler) TrackPhotoView(c *fiber.Ctx) error {
	var req TrackPhotoViewRequest
	_ = c.BodyParser(&req)

	h.trackUC.TrackPhotoView(c.UserContext(), usecase.TrackPhotoViewInput{
		PhotoID:    string(req.PhotoID),
		PhotoTitle: req.PhotoTitle,
		SessionID:  req.SessionID,
	})

	return c.Status(http.StatusOK).JSON(TrackResponse{Success: true})
}

// GetAnalytics godoc
// @Summary Live analytics snapshot
// @Description Recomputes the snapshot from the live in-memory counters on every call
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	snap, err := h.snapshotUC.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_server_error",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusOK).JSON(snap)
}

// GetSimulatedAnalytics godoc
// @Summary Simulated analytics
// @Description Random demo data labelled with simulated=true. Never reflects live traffic.
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.SimulatedSnapshot
// @Router /api/analytics/simulated [get]
func (h *AnalyticsHandler) GetSimulatedAnalytics(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.simulateUC.Execute(c.UserContext()))
}
