package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-billpay/app/controller"
	"github.com/vibast-solutions/ms-go-billpay/app/repository"
	"github.com/vibast-solutions/ms-go-billpay/app/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the callback receiver HTTP server",
	Long:  "Start the HTTP server that records gateway payment callbacks and answers result polls.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	store := repository.NewResultStore(cfg.Results.TTL)
	resultService := service.NewResultService(store)
	resultController := controller.NewResultController(resultService)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go store.StartSweeper(sweepCtx, cfg.Results.SweepInterval)

	e := setupHTTPServer(resultController)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	stopSweeper()

	logrus.Info("Server stopped")
}

func setupHTTPServer(resultController *controller.ResultController) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.GET("/health", resultController.Health)

	// The gateway writes, the poller reads; the result store in between
	// is the only thing they share.
	e.POST("/api/payment-callback", resultController.RecordResult)
	e.GET("/api/payment-callback", resultController.FetchResult)

	return e
}
