// Package server assembles the gallery HTTP application.
package server

import (
	"errors"
	"net/http"
	"time"

	"gallery-analytics-service/internal/accesslog"
	analyticsHttp "gallery-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsMemory "gallery-analytics-service/internal/analytics/adapters/memory"
	analyticsDomain "gallery-analytics-service/internal/analytics/core/domain"
	analyticsUsecase "gallery-analytics-service/internal/analytics/core/usecase"
	"gallery-analytics-service/internal/config"
	"gallery-analytics-service/internal/healthcheck"
	"gallery-analytics-service/internal/log"
	photosHttp "gallery-analytics-service/internal/photos/adapters/http/fiber"
	photosMemory "gallery-analytics-service/internal/photos/adapters/memory"
	photosUsecase "gallery-analytics-service/internal/photos/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"Cannot GET /missing"`
}

// Server is the assembled application together with the metrics store it owns.
type Server struct {
	App   *fiber.App
	Store *analyticsMemory.MetricsStore
}

// New builds the fiber application. The metrics store is created here and
// lives as long as the returned Server.
func New(cfg *config.Config, logger log.Logger) *Server {
	store := analyticsMemory.NewMetricsStore()
	serverInfo := analyticsDomain.ServerInfo{ServerID: cfg.ServerID, StartedAt: time.Now()}

	// Usecases
	trackUC := analyticsUsecase.NewTrackUseCase(store.Requests, store.Photos, store.Sessions)
	snapshotUC := analyticsUsecase.NewGetSnapshotUseCase(store, serverInfo)
	simulateUC := analyticsUsecase.NewSimulateSnapshotUseCase()
	photosUC := photosUsecase.NewGetPhotosUseCase(photosMemory.NewCatalog())

	app := fiber.New(fiber.Config{
		AppName:               "gallery-analytics-service",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(
		recover.New(recover.Config{EnableStackTrace: true}),
		requestid.New(),
		accesslog.Handler(logger),
		allowAnyOrigin,
		cors.New(cors.Config{AllowOrigins: "*"}),
		analyticsHttp.CountRequests(trackUC),
	)

	// health
	healthcheck.RegisterHandlers(app, cfg.ServerID)

	// photos endpoints
	photoHandler := photosHttp.NewPhotoHandler(photosUC, trackUC)
	app.Get("/api/photos", photoHandler.ListPhotos)
	app.Get("/api/photos/:id", photoHandler.GetPhoto)

	// tracking + analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(trackUC, snapshotUC, simulateUC)
	app.Post("/api/track/page-view", analyticsHandler.TrackPageView)
	app.Post("/api/track/photo-view", analyticsHandler.TrackPhotoView)
	app.Get("/api/analytics", analyticsHandler.GetAnalytics)
	app.Get("/api/analytics/simulated", analyticsHandler.GetSimulatedAnalytics)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// frontend
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return &Server{App: app, Store: store}
}

// allowAnyOrigin sets the CORS origin header on every response, including
// requests without an Origin header that the cors middleware leaves alone.
// It is set again afterwards since the static file handler may reset the response.
func allowAnyOrigin(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	err := c.Next()
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return err
}

func errorHandler(logger log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		resp := ErrorResponse{Error: "internal_server_error"}
		switch {
		case code == http.StatusNotFound:
			resp = ErrorResponse{Error: "not_found", Message: err.Error()}
		case code < http.StatusInternalServerError:
			resp = ErrorResponse{Error: "bad_request", Message: err.Error()}
		default:
			logger.With(c.UserContext()).Errorf("encountered internal server error: %v", err)
		}

		return c.Status(code).JSON(resp)
	}
}
