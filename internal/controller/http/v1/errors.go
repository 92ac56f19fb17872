package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/LogLens/internal/service"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

// toHTTPError maps service sentinels to statuses. Anything unknown is a 500
// whose detail stays in the log.
func toHTTPError(err error) *echo.HTTPError {
	var enumErr *source.EnumerationError

	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, service.ErrBookmarkNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookmarkExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &enumErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log.Error(err)
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = toHTTPError(err)
		}

		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(he.Code)
		} else {
			sendErr = c.JSON(he.Code, errorResponse{Error: msg})
		}
		if sendErr != nil {
			e.Logger.Error(sendErr)
		}
	}
}
