package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/compliance-shell/internal/logging"
)

// setupErrorHandling installs the central error handler. echo.HTTPErrors
// keep their status; anything else is a 500 logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		req := c.Request()
		logger := logging.FromContext(req.Context())

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			logger.Warn("HTTP error", "status", code, "error", err, "method", req.Method, "path", req.URL.Path)
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", req.Method,
				"path", req.URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.String(code, http.StatusText(code))
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
