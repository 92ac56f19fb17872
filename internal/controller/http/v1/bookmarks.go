package httpv1

import (
	"net/http"

	"github.com/Egor213/LogLens/internal/service"
	"github.com/labstack/echo/v4"
)

type BookmarkController struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkController(bookmarks *service.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarks: bookmarks}
}

type createBookmarkRequest struct {
	LogEntryID int64  `json:"log_entry_id" validate:"required,min=1"`
	Title      string `json:"title" validate:"required,max=200"`
	Notes      string `json:"notes" validate:"max=4000"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
}

type updateBookmarkRequest struct {
	ID    int64   `param:"id" json:"-" validate:"min=1"`
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
	Notes *string `json:"notes" validate:"omitempty,max=4000"`
}

type bookmarkPath struct {
	ID int64 `param:"id" validate:"min=1"`
}

func (bc *BookmarkController) Create(c echo.Context) error {
	var req createBookmarkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	b, err := bc.bookmarks.Add(c.Request().Context(), service.BookmarkInput{
		LogEntryID: req.LogEntryID,
		Title:      req.Title,
		Notes:      req.Notes,
		Color:      req.Color,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (bc *BookmarkController) Update(c echo.Context) error {
	var req updateBookmarkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	b, err := bc.bookmarks.Update(c.Request().Context(), req.ID, service.BookmarkPatch{
		Title: req.Title,
		Color: req.Color,
		Notes: req.Notes,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (bc *BookmarkController) Delete(c echo.Context) error {
	var req bookmarkPath
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := bc.bookmarks.Delete(c.Request().Context(), req.ID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
