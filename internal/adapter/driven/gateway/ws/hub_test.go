package ws

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	id      string
	mu      sync.Mutex
	states  []domain.BoardState
	closed  bool
	sendErr error
	delay   time.Duration
}

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) SendState(state domain.BoardState) error {
	time.Sleep(c.delay)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.states = append(c.states, state)
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) received() []domain.BoardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.BoardState(nil), c.states...)
}

func (c *fakeClient) last() (domain.BoardState, bool) {
	states := c.received()
	if len(states) == 0 {
		return domain.BoardState{}, false
	}
	return states[len(states)-1], true
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestHub(t *testing.T) {
	t.Run("should deliver states to every registered client", func(t *testing.T) {
		req := require.New(t)
		hub := NewHub()
		go hub.Run()
		defer hub.Stop()

		a, b := &fakeClient{id: "a"}, &fakeClient{id: "b"}
		hub.Register(a, domain.BoardState{Version: 1})
		hub.Register(b, domain.BoardState{Version: 1})

		req.NoError(hub.BroadcastState(context.Background(), domain.BoardState{Version: 2, Draft: "x"}))

		for _, c := range []*fakeClient{a, b} {
			req.Eventually(func() bool {
				state, ok := c.last()
				return ok && state.Draft == "x"
			}, time.Second, 10*time.Millisecond, c.id)
		}
	})

	t.Run("should drop a client whose send fails", func(t *testing.T) {
		req := require.New(t)
		hub := NewHub()
		go hub.Run()
		defer hub.Stop()

		broken := &fakeClient{id: "broken", sendErr: errors.New("broken pipe")}
		hub.Register(broken, domain.BoardState{})
		req.NoError(hub.BroadcastState(context.Background(), domain.BoardState{}))

		req.Eventually(broken.isClosed, time.Second, 10*time.Millisecond)
	})

	t.Run("should close clients on stop", func(t *testing.T) {
		hub := NewHub()
		go hub.Run()

		c := &fakeClient{id: "c"}
		hub.Register(c, domain.BoardState{})
		hub.Stop()

		require.True(t, c.isClosed())
		// registering after stop must not block
		late := &fakeClient{id: "late"}
		hub.Register(late, domain.BoardState{})
		require.True(t, late.isClosed())
	})
	t.Run("should deliver the final state to every client despite a slow reader", func(t *testing.T) {
		req := require.New(t)
		hub := NewHub()
		go hub.Run()
		defer hub.Stop()

		fast := &fakeClient{id: "fast"}
		slow := &fakeClient{id: "slow", delay: 20 * time.Millisecond}
		hub.Register(fast, domain.BoardState{Version: 1})
		hub.Register(slow, domain.BoardState{Version: 1})

		ctx := context.Background()
		for v := uint64(2); v <= 101; v++ {
			req.NoError(hub.BroadcastState(ctx, domain.BoardState{Version: v, Loading: true}))
		}
		req.NoError(hub.BroadcastState(ctx, domain.BoardState{Version: 102, Draft: "final"}))

		for _, c := range []*fakeClient{fast, slow} {
			req.Eventually(func() bool {
				state, ok := c.last()
				return ok && state.Version == 102
			}, 2*time.Second, 10*time.Millisecond, c.id)
			state, _ := c.last()
			req.Equal("final", state.Draft)
			req.False(state.Loading)
		}
	})

	t.Run("should never send an older state after the initial one", func(t *testing.T) {
		req := require.New(t)
		hub := NewHub()
		go hub.Run()
		defer hub.Stop()

		c := &fakeClient{id: "c"}
		hub.Register(c, domain.BoardState{Version: 5, Draft: "snapshot"})
		req.NoError(hub.BroadcastState(context.Background(), domain.BoardState{Version: 3, Draft: "queued"}))
		req.NoError(hub.BroadcastState(context.Background(), domain.BoardState{Version: 6, Draft: "next"}))

		req.Eventually(func() bool {
			state, ok := c.last()
			return ok && state.Version == 6
		}, time.Second, 10*time.Millisecond)

		var previous uint64
		for _, state := range c.received() {
			req.NotEqual("queued", state.Draft)
			req.Greater(state.Version, previous)
			previous = state.Version
		}
	})
}
