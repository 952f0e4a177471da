package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "fulfillment/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "Run the HTTP API with Swagger UI, Prometheus metrics and the scheduled backup job.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(c *cobra.Command, _ []string) error {
	app, err := openApplication(c, os.Stdout)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := apihttp.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	metrics := apihttp.NewMetrics(apihttp.DefaultMetricsConfig())
	server := apihttp.NewServer(app.root.CreateHTTPHandlers(), metrics, app.logger)
	e, err := apihttp.NewRouter(server, apihttp.RouterConfig{
		Metrics:          metrics,
		Document:         doc,
		ValidateRequests: true,
	}, app.logger)
	if err != nil {
		return err
	}

	jobManager := app.root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	addr := fmt.Sprintf("0.0.0.0:%s", app.cfg.HTTPPort)
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()
	app.logger.InfoContext(ctx, "HTTP server started", "addr", addr, "store", app.cfg.StoreDriver)

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	app.logger.InfoContext(shutdownCtx, "HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}
