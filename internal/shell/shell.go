package shell

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/compliance-shell/internal/domain"
	"github.com/nfrund/compliance-shell/internal/logging"
	"github.com/nfrund/compliance-shell/internal/profile"
)

// TokenReader gives access to the persisted session token.
type TokenReader interface {
	Token() (string, bool)
}

// ProfileFetcher reads the current user's profile using a bearer token.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (domain.Profile, error)
}

// Shell mounts page loads.
type Shell struct {
	fetcher ProfileFetcher
	now     func() time.Time
}

// New creates a Shell that fetches profiles through fetcher.
func New(fetcher ProfileFetcher) *Shell {
	return &Shell{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Mount starts a shell load. It never blocks on the network: when a token
// is present the profile fetch runs in its own goroutine and the returned
// load is pending until it settles.
//
// The fetch outlives ctx's cancellation, since the page that mounted the
// shell is usually written out before the backend answers, but it keeps
// ctx's values, including the request logger.
func (s *Shell) Mount(ctx context.Context, tokens TokenReader) *Load {
	token, ok := "", false
	if tokens != nil {
		token, ok = tokens.Token()
	}
	if !ok || token == "" {
		return newLoad(s.now(), StatusNotAttempted)
	}

	load := newLoad(s.now(), StatusPending)
	go s.fetch(context.WithoutCancel(ctx), load, token)
	return load
}

func (s *Shell) fetch(ctx context.Context, load *Load, token string) {
	logger := logging.FromContext(ctx).With("load_id", load.ID())

	var (
		user domain.Profile
		err  error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("profile fetch panicked: %v", r)
			}
		}()
		user, err = s.fetcher.FetchProfile(ctx, token)
	}()

	if err != nil {
		logger.Error("failed to load user profile", "error", err, "unavailable", profile.IsUnavailable(err))
		load.settle(Result{Status: StatusFailed, Err: err})
		return
	}
	logger.Debug("user profile loaded")
	load.settle(Result{Status: StatusLoaded, User: user})
}

// StaticToken is a TokenReader over a fixed value; an empty value means no
// token is stored.
type StaticToken string

// Token implements TokenReader.
func (t StaticToken) Token() (string, bool) {
	return string(t), t != ""
}
