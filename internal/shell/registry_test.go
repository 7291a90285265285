package shell

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_TakeOnce(t *testing.T) {
	reg := NewRegistry(time.Minute)
	load := newLoad(time.Now(), StatusNotAttempted)

	reg.Add(load)
	assert.Equal(t, 1, reg.Len())

	got, ok := reg.Take(load.ID())
	require.True(t, ok)
	assert.Same(t, load, got)

	_, ok = reg.Take(load.ID())
	assert.False(t, ok, "a load can only be collected once")
	assert.Zero(t, reg.Len())
}

func TestRegistry_TakeUnknown(t *testing.T) {
	_, ok := NewRegistry(time.Minute).Take("missing")
	assert.False(t, ok)
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewRegistry(time.Minute)
	reg.now = func() time.Time { return now }

	stale := newLoad(now.Add(-2*time.Minute), StatusNotAttempted)
	fresh := newLoad(now.Add(-10*time.Second), StatusNotAttempted)
	reg.Add(stale)
	reg.Add(fresh)

	assert.Equal(t, 1, reg.Sweep())
	_, ok := reg.Take(stale.ID())
	assert.False(t, ok)
	_, ok = reg.Take(fresh.ID())
	assert.True(t, ok)
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	reg := NewRegistry(5 * time.Millisecond)
	reg.Add(newLoad(time.Now().Add(-time.Hour), StatusNotAttempted))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		reg.Run(ctx)
		close(stopped)
	}()

	assert.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
