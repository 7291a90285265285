package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/compliance-shell/internal/assets"
	"github.com/nfrund/compliance-shell/internal/handlers"
	"github.com/nfrund/compliance-shell/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/static/*", echo.WrapHandler(assets.Handler(s.assets)))

	// Every page load triggers at most one collection, so the limit only
	// bites on clients hammering the endpoint.
	s.E.GET(handlers.LoadsPath+"/:id", s.shellHandler.UserGet, middleware.RateLimiter(20, 40))

	// The shell routes are resolved by the route table, including the 404.
	s.E.GET("/", s.shellHandler.Dispatch)
	s.E.GET("/*", s.shellHandler.Dispatch)
}
