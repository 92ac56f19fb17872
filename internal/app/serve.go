package app

import (
	"context"

	httpv1 "github.com/Egor213/LogLens/internal/controller/http/v1"
	"github.com/Egor213/LogLens/internal/metrics"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/Egor213/LogLens/pkg/httpserver"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the query and ingest API with Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE:  opts.withContainer(serve),
	}
}

func serve(cmd *cobra.Command, _ []string, c *container) error {
	// HTTP Server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", c.cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	handler.HidePort = true
	httpv1.ConfigureRouter(handler, c.services, c.counters, c.openSource)
	metrics.ConfigureRouter(handler)
	server := httpserver.New(handler, httpserver.Port(c.cfg.HTTP.Port))

	// Waiting signal
	var err error
	select {
	case <-cmd.Context().Done():
		log.Info("app - serve - signal: " + context.Cause(cmd.Context()).Error())
	case err = <-server.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if shutdownErr := server.Shutdown(); shutdownErr != nil {
		log.Error(errorsUtils.WrapPathErr(shutdownErr))
	}

	return err
}
