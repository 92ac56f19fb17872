package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/LogLens/internal/repo/repotypes"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/labstack/echo/v4"
)

const defaultEntriesLimit = 1000

type SessionController struct {
	query *service.QueryService
}

func NewSessionController(query *service.QueryService) *SessionController {
	return &SessionController{query: query}
}

type sessionPath struct {
	ID string `param:"id" validate:"required,uuid"`
}

type entriesRequest struct {
	ID           string   `param:"id" validate:"required,uuid"`
	Levels       []string `query:"level" validate:"dive,required,max=32"`
	Search       string   `query:"search" validate:"max=512"`
	FailuresOnly bool     `query:"failures"`
	Limit        int      `query:"limit" validate:"min=0,max=10000"`
	Offset       int      `query:"offset" validate:"min=0"`
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	return nil
}

func (sc *SessionController) List(c echo.Context) error {
	sessions, err := sc.query.ListSessions(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

func (sc *SessionController) Get(c echo.Context) error {
	var req sessionPath
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := sc.query.GetSession(c.Request().Context(), req.ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, session)
}

func (sc *SessionController) Delete(c echo.Context) error {
	var req sessionPath
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := sc.query.DeleteSession(c.Request().Context(), req.ID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (sc *SessionController) Entries(c echo.Context) error {
	var req entriesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = defaultEntriesLimit
	}

	page, err := sc.query.GetEntries(c.Request().Context(), repotypes.EntryFilter{
		SessionID:    req.ID,
		Levels:       req.Levels,
		Search:       req.Search,
		FailuresOnly: req.FailuresOnly,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (sc *SessionController) Levels(c echo.Context) error {
	var req sessionPath
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	levels, err := sc.query.GetLevels(c.Request().Context(), req.ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, levels)
}

func (sc *SessionController) Bookmarks(c echo.Context) error {
	var req sessionPath
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bookmarks, err := sc.query.ListBookmarks(c.Request().Context(), req.ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, bookmarks)
}
