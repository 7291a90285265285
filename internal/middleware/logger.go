package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/compliance-shell/internal/logging"
)

// Logger is a middleware that injects a request-scoped logger into the context.
// This logger is pre-configured with the request ID from the RequestID middleware.
// It should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		req := c.Request()
		c.SetRequest(req.WithContext(logging.WithContext(req.Context(), requestLogger)))

		err := next(c)
		requestLogger.Debug("request served",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
		)
		return err
	}
}
