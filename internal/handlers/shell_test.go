package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/compliance-shell/internal/domain"
	"github.com/nfrund/compliance-shell/internal/rendering"
	"github.com/nfrund/compliance-shell/internal/router"
	"github.com/nfrund/compliance-shell/internal/session"
	"github.com/nfrund/compliance-shell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, token string) (domain.Profile, error)

func (f fetchFunc) FetchProfile(ctx context.Context, token string) (domain.Profile, error) {
	return f(ctx, token)
}

func newEcho(h *ShellHandler) *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(session.NewCookieStore("0123456789abcdef0123456789abcdef", false)))
	e.GET(LoadsPath+"/:id", h.UserGet)
	e.GET("/*", h.Dispatch)
	return e
}

func TestUserGet_FallbackName(t *testing.T) {
	sh := shell.New(fetchFunc(func(context.Context, string) (domain.Profile, error) {
		return domain.Profile{"role": "employee"}, nil
	}))
	loads := shell.NewRegistry(time.Minute)
	h := NewShellHandler(sh, loads, router.Default(), "shell-session")

	load := sh.Mount(context.Background(), shell.StaticToken("tok"))
	loads.Add(load)

	rec := httptest.NewRecorder()
	newEcho(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, LoadsPath+"/"+load.ID(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signed in as <strong>current user</strong>")
}

func TestUserGet_AbandonedByClient(t *testing.T) {
	release := make(chan struct{})
	sh := shell.New(fetchFunc(func(context.Context, string) (domain.Profile, error) {
		<-release
		return domain.Profile{"username": "alice"}, nil
	}))
	defer close(release)
	loads := shell.NewRegistry(time.Minute)
	h := NewShellHandler(sh, loads, router.Default(), "shell-session")

	load := sh.Mount(context.Background(), shell.StaticToken("tok"))
	loads.Add(load)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, LoadsPath+"/"+load.ID(), nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	newEcho(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, loads.Len(), "the load is gone once taken")
}

func TestDispatch_MarksActiveLink(t *testing.T) {
	h := NewShellHandler(shell.New(nil), shell.NewRegistry(time.Minute), router.Default(), "shell-session")

	rec := httptest.NewRecorder()
	newEcho(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/regulatory-updates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<a href="/regulatory-updates" class="active" aria-current="page">Regulatory Updates</a>`)
	assert.Contains(t, body, `<a href="/">Home</a>`)
	assert.Contains(t, body, "<title>Regulatory Updates - Compliance Management System</title>")
}

func TestDispatch_BoostedRequestRendersContentOnly(t *testing.T) {
	loads := shell.NewRegistry(time.Minute)
	h := NewShellHandler(shell.New(nil), loads, router.Default(), "shell-session")

	req := httptest.NewRequest(http.MethodGet, "/training-modules", nil)
	req.Header.Set("HX-Boosted", "true")
	rec := httptest.NewRecorder()
	newEcho(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Training Modules - Compliance Management System</title>")
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, `<main><div class="placeholder">Training Modules Page</div></main>`)
	assert.NotContains(t, body, "<html")
	assert.Zero(t, loads.Len())
}
