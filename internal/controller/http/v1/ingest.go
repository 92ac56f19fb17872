package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/LogLens/internal/controller/common/logging"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/labstack/echo/v4"
)

type IngestController struct {
	ingest *service.IngestService
	open   SourceOpener
}

func NewIngestController(ingest *service.IngestService, open SourceOpener) *IngestController {
	return &IngestController{ingest: ingest, open: open}
}

type ingestRequest struct {
	Source   string   `json:"source" validate:"required"`
	Sessions []string `json:"sessions" validate:"dive,required"`
}

type scanRequest struct {
	Source string `json:"source" validate:"required"`
}

type ingestResponse struct {
	Summary string               `json:"summary"`
	Report  *domain.IngestReport `json:"report"`
}

func (ic *IngestController) Ingest(c echo.Context) error {
	var req ingestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	src, err := ic.open(req.Source)
	if err != nil {
		return badRequest(err)
	}

	logginghelper.LogIngestStarted(src.Path(), req.Sessions)
	report, err := ic.ingest.Ingest(c.Request().Context(), src, req.Sessions)
	if err != nil {
		logginghelper.LogIngestError(src.Path(), err)
		return toHTTPError(err)
	}
	logginghelper.LogReport(report)

	return c.JSON(http.StatusOK, ingestResponse{Summary: report.Summary(), Report: report})
}

func (ic *IngestController) Scan(c echo.Context) error {
	var req scanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	src, err := ic.open(req.Source)
	if err != nil {
		return badRequest(err)
	}

	candidates, err := ic.ingest.Scan(c.Request().Context(), src)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, candidates)
}
