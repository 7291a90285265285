// Package session keeps the persisted token in the browser's signed session
// cookie, which is the shell's client-local key-value storage.
package session

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// TokenKey is the fixed key the token is stored under.
const TokenKey = "token"

// NewCookieStore creates the cookie-backed session store.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
	}
	return store
}

// Middleware installs the session store on the echo context.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

// RequestToken reads the token from one request's session.
type RequestToken struct {
	c    echo.Context
	name string
}

// Reader returns the token reader for the current request.
func Reader(c echo.Context, name string) RequestToken {
	return RequestToken{c: c, name: name}
}

// Token returns the stored token. A missing, unreadable or non-string entry
// counts as no token.
func (r RequestToken) Token() (string, bool) {
	sess, err := session.Get(r.name, r.c)
	if err != nil || sess == nil {
		return "", false
	}
	token, ok := sess.Values[TokenKey].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// SetToken persists token in the session. The shell never calls it; it is
// the hook for the login flow.
func SetToken(c echo.Context, name, token string) error {
	sess, err := session.Get(name, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	sess.Values[TokenKey] = token
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
