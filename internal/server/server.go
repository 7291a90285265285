package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/compliance-shell/internal/config"
	"github.com/nfrund/compliance-shell/internal/handlers"
	"github.com/nfrund/compliance-shell/internal/middleware"
	"github.com/nfrund/compliance-shell/internal/rendering"
	"github.com/nfrund/compliance-shell/internal/router"
	"github.com/nfrund/compliance-shell/internal/session"
	"github.com/nfrund/compliance-shell/internal/shell"
	"github.com/spf13/afero"
)

// Dependencies holds the services the server is built from.
type Dependencies struct {
	Config *config.Config
	Shell  *shell.Shell
	Loads  *shell.Registry
	Routes router.Table
	Assets afero.Fs
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	cfg          *config.Config
	loads        *shell.Registry
	assets       afero.Fs
	shellHandler *handlers.ShellHandler
}

// New creates a new Server instance with its middleware chain installed.
// Routes are added by RegisterRoutes.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(session.Middleware(session.NewCookieStore(deps.Config.SessionSecret, deps.Config.CookieSecure)))

	setupErrorHandling(e)

	return &Server{
		E:            e,
		cfg:          deps.Config,
		loads:        deps.Loads,
		assets:       deps.Assets,
		shellHandler: handlers.NewShellHandler(deps.Shell, deps.Loads, deps.Routes, deps.Config.SessionName),
	}
}

// Loads is a getter for the server's load registry, useful for testing.
func (s *Server) Loads() *shell.Registry {
	return s.loads
}
