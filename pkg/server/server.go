// Package server implements the ruffyt web service.
// It exposes a liveness endpoint and an echo endpoint; both are stateless.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ruffyt/ruffyt/pkg/config"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 10 * time.Second

// EchoRequest is the request body accepted by the echo endpoint.
type EchoRequest struct {
	Message string `json:"message"`
}

// New creates the HTTP service with all routes registered.
//
// Returns:
//   - *echo.Echo: Configured service ready to start
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", Health)
	e.POST("/echo", Echo)

	return e
}

// Health is the liveness endpoint used by load balancers and monitoring
// systems to verify that the service is running.
//
// Parameters:
//   - c: Echo request context
//
// Returns:
//   - error: Response write error
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Echo returns the caller's message unchanged.
//
// Parameters:
//   - c: Echo request context
//
// Returns:
//   - error: 400 on an unreadable body, response write error otherwise
func Echo(c echo.Context) error {
	var req EchoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": req.Message})
}

// Start runs the service until the context is cancelled.
//
// It performs the following operations:
//   - Step 1: Start listening on the configured port
//   - Step 2: Wait for the context to be cancelled or the listener to fail
//   - Step 3: Shut down gracefully with a bounded timeout
//
// Parameters:
//   - ctx: Context whose cancellation triggers shutdown
//   - e: The service created by New
//   - cfg: Configuration carrying the server port
//
// Returns:
//   - error: Listener failure other than a clean shutdown
func Start(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
