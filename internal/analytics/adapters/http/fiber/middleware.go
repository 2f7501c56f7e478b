package fiber

import (
	"context"

	"gallery-analytics-service/internal/analytics/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type RequestRecorder interface {
	RecordRequest(ctx context.Context, ev domain.RequestEvent)
}

// CountRequests records every request before it reaches routing, including
// static files and unmatched paths.
func CountRequests(rec RequestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// header values point into the fasthttp buffer and are reused after the handler returns
		rec.RecordRequest(c.UserContext(), domain.RequestEvent{
			ClientID:  utils.CopyString(c.IP()),
			UserAgent: utils.CopyString(c.Get(fiber.HeaderUserAgent)),
			Referrer:  utils.CopyString(c.Get(fiber.HeaderReferer)),
		})
		return c.Next()
	}
}
