package shell

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/compliance-shell/internal/domain"
)

// Status is the state of a load's profile fetch.
type Status int

const (
	StatusNotAttempted Status = iota
	StatusPending
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotAttempted:
		return "not-attempted"
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a load. User is set only when Status is
// StatusLoaded and Err only when it is StatusFailed.
type Result struct {
	Status Status
	User   domain.Profile
	Err    error
}

// Load is one mount of the shell and owns that mount's user state.
type Load struct {
	id        string
	createdAt time.Time
	done      chan struct{}

	mu     sync.RWMutex
	result Result
}

func newLoad(now time.Time, status Status) *Load {
	l := &Load{
		id:        uuid.NewString(),
		createdAt: now,
		done:      make(chan struct{}),
		result:    Result{Status: status},
	}
	if status != StatusPending {
		close(l.done)
	}
	return l
}

// ID identifies the load for later collection.
func (l *Load) ID() string { return l.id }

// CreatedAt is when the shell was mounted.
func (l *Load) CreatedAt() time.Time { return l.createdAt }

// Done is closed once the load has settled.
func (l *Load) Done() <-chan struct{} { return l.done }

// Result returns a snapshot of the load's outcome.
func (l *Load) Result() Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.result
}

// User returns the loaded profile, if any.
func (l *Load) User() (domain.Profile, bool) {
	r := l.Result()
	return r.User, r.Status == StatusLoaded
}

// Wait blocks until the load settles or ctx is done.
func (l *Load) Wait(ctx context.Context) (Result, error) {
	select {
	case <-l.done:
		return l.Result(), nil
	case <-ctx.Done():
		return l.Result(), ctx.Err()
	}
}

// settle records the outcome. It is only called by the fetch goroutine.
func (l *Load) settle(r Result) {
	l.mu.Lock()
	l.result = r
	l.mu.Unlock()
	close(l.done)
}
