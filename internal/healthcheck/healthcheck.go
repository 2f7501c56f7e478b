package healthcheck

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

const StatusHealthy = "healthy"

// TimestampLayout matches JavaScript's Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Response identifies the serving instance; load test tooling reads Server
// to infer which backend answered.
type Response struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-06-18T12:00:00.000Z"`
	Server    string `json:"server" example:"server-1"`
}

// RegisterHandlers mounts GET /api/health.
func RegisterHandlers(r fiber.Router, serverID string) {
	r.Get("/api/health", Handler(serverID, time.Now))
}

// Handler godoc
// @Summary Health check
// @Description Reports liveness and the id of the serving instance
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /api/health [get]
func Handler(serverID string, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(Response{
			Status:    StatusHealthy,
			Timestamp: now().UTC().Format(TimestampLayout),
			Server:    serverID,
		})
	}
}
