package httpv1

import (
	"github.com/Egor213/LogLens/internal/controller/http/validators"
	"github.com/Egor213/LogLens/internal/metrics"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SourceOpener resolves an ingest request's location to a source.
type SourceOpener func(location string) (source.Source, error)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, open SourceOpener) {
	handler.Validator = validators.New()
	handler.HTTPErrorHandler = errorHandler(handler)
	handler.Use(middleware.Recover())

	api := handler.Group("/api/v1", metrics.CountRequests(counters.HTTPRequests))

	sessions := NewSessionController(services.Query)
	api.GET("/sessions", sessions.List)
	api.GET("/sessions/:id", sessions.Get)
	api.DELETE("/sessions/:id", sessions.Delete)
	api.GET("/sessions/:id/entries", sessions.Entries)
	api.GET("/sessions/:id/levels", sessions.Levels)
	api.GET("/sessions/:id/bookmarks", sessions.Bookmarks)

	bookmarks := NewBookmarkController(services.Bookmarks)
	api.POST("/bookmarks", bookmarks.Create)
	api.PATCH("/bookmarks/:id", bookmarks.Update)
	api.DELETE("/bookmarks/:id", bookmarks.Delete)

	ingest := NewIngestController(services.Ingest, open)
	api.POST("/ingest", ingest.Ingest)
	api.POST("/scan", ingest.Scan)
}
