package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"district-scheduler/pkg/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	gin.SetMode(a.cfg.GinMode)

	handlers := api.NewHandlers(
		a.directory,
		a.validator,
		a.submissions,
		a.cfg.CountryCodes,
		a.cfg.DefaultCountryCode,
		a.logger,
	)
	router := api.NewRouter(handlers, api.RouterOptions{
		Logger:         a.logger,
		AllowedOrigins: a.cfg.CORSAllowedOrigins,
		MetricsEnabled: a.cfg.MetricsEnabled,
		MetricsPath:    a.cfg.MetricsPath,
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", zap.String("port", a.cfg.Port), zap.String("endpoint", a.cfg.EndpointURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Error starting server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
