package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pankaj139/portfolio/internal/site"
	"github.com/pankaj139/portfolio/internal/telemetry"
)

const serviceName = "portfolio"

func newServeCmd(profilePath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  "Start an HTTP server for the portfolio page and its HTMX fragments. Stops gracefully on SIGINT or SIGTERM.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.ErrOrStderr(), *profilePath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				e.cfg.Port = port
				if err := e.cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cmd.Context(), e)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(parent context.Context, e *env) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(e.cfg.GinMode)

	if e.cfg.TracingEnabled() {
		shutdown, err := telemetry.Setup(ctx, serviceName, e.cfg.OTelEndpoint)
		if err != nil {
			return fmt.Errorf("failed to set up tracing: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				e.logger.Warn("tracer shutdown failed", "error", err)
			}
		}()
		e.logger.Info("tracing enabled", "endpoint", e.cfg.OTelEndpoint)
	}

	salt, err := site.NewSalt()
	if err != nil {
		return err
	}

	engine := site.NewEngine(e.site, e.logger, salt)
	return site.NewServer(e.cfg.Port, engine, e.cfg.ShutdownTimeout, e.logger).Run(ctx)
}
