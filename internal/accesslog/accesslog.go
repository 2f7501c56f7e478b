// Package accesslog provides a fiber middleware that logs every request.
package accesslog

import (
	"errors"
	"time"

	"gallery-analytics-service/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Handler returns a middleware that records the request id in the request
// context and logs one line per request once it has been handled.
func Handler(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		ctx := c.UserContext()
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			ctx = log.WithRequestID(ctx, id)
			c.SetUserContext(ctx)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logger.With(ctx, "duration", time.Since(start).Milliseconds(), "status", status).
			Infof("%s %s %s %d %d", c.Method(), c.OriginalURL(), c.Protocol(), status, len(c.Response().Body()))

		return err
	}
}
