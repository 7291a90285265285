package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/compliance-shell/internal/logging"
	"github.com/nfrund/compliance-shell/internal/router"
	"github.com/nfrund/compliance-shell/internal/session"
	"github.com/nfrund/compliance-shell/internal/shell"
	"github.com/nfrund/compliance-shell/web/src/templates/components"
	"github.com/nfrund/compliance-shell/web/src/templates/layouts"
	"github.com/nfrund/compliance-shell/web/src/templates/pages"
	g "maragu.dev/gomponents"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// LoadsPath is the route prefix the browser collects user state from.
const LoadsPath = "/shell/loads"

// fallbackUserName is shown when the profile has no recognisable name.
const fallbackUserName = "current user"

// ShellHandler renders the shell around the routed views and hands each
// load's user state to the browser.
type ShellHandler struct {
	shell       *shell.Shell
	loads       *shell.Registry
	routes      router.Table
	sessionName string
}

// NewShellHandler creates a new ShellHandler.
func NewShellHandler(sh *shell.Shell, loads *shell.Registry, routes router.Table, sessionName string) *ShellHandler {
	return &ShellHandler{
		shell:       sh,
		loads:       loads,
		routes:      routes,
		sessionName: sessionName,
	}
}

// Dispatch renders the view bound to the request path, or the shell with no
// view and a 404 status when nothing is bound to it.
func (h *ShellHandler) Dispatch(c echo.Context) error {
	route, ok := h.routes.Match(c.Request().URL.Path)
	if !ok {
		return h.render(c, http.StatusNotFound, "", "Not Found", pages.NotFound())
	}
	return h.render(c, http.StatusOK, route.Path, route.Label, route.View())
}

// render mounts the shell and writes the page without waiting for the
// profile fetch. In-app navigation arrives as a boosted request against a
// shell that is already mounted; it gets the routed content only.
func (h *ShellHandler) render(c echo.Context, status int, activePath, title string, content g.Node) error {
	c.Response().Header().Add(echo.HeaderVary, "HX-Boosted")
	if hxhttp.IsBoosted(c.Request().Header) {
		return c.Render(status, "", layouts.Content(layouts.ShellData{
			Title:   title,
			Nav:     h.nav(activePath),
			Content: content,
		}))
	}

	load := h.shell.Mount(c.Request().Context(), session.Reader(c, h.sessionName))

	var loadURL string
	if load.Result().Status != shell.StatusNotAttempted {
		h.loads.Add(load)
		loadURL = LoadsPath + "/" + load.ID()
	}

	page := layouts.Shell(layouts.ShellData{
		Title:   title,
		Nav:     h.nav(activePath),
		User:    layouts.UserSlot(loadURL),
		Content: content,
	})
	return c.Render(status, "", page)
}

func (h *ShellHandler) nav(activePath string) []layouts.NavLink {
	links := make([]layouts.NavLink, 0, len(h.routes))
	for _, r := range h.routes {
		links = append(links, layouts.NavLink{
			Href:   r.Path,
			Label:  r.Label,
			Active: r.Path == activePath,
		})
	}
	return links
}

// UserGet hands over a load's user state (GET /shell/loads/:id). Each load
// can be collected once; unknown ids get 204 so the slot is left alone.
func (h *ShellHandler) UserGet(c echo.Context) error {
	load, ok := h.loads.Take(c.Param("id"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	res, err := load.Wait(c.Request().Context())
	if err != nil {
		// The browser went away before the backend answered.
		logging.FromContext(c.Request().Context()).Debug("user state abandoned", "load_id", load.ID(), "error", err)
		return c.NoContent(http.StatusNoContent)
	}

	if res.Status != shell.StatusLoaded {
		// Failures were logged when the load settled.
		return c.Render(http.StatusOK, "", components.EmptyUser(layouts.UserSlotID))
	}

	name := res.User.DisplayName()
	if name == "" {
		name = fallbackUserName
	}
	return c.Render(http.StatusOK, "", components.UserBadge(layouts.UserSlotID, name))
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
