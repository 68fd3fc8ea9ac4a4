package ws

import (
	"context"
	"sync"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/rs/zerolog/log"
)

// implements port.StateGateway
type Hub struct {
	clients    map[Client]*subscriber
	pending    chan domain.BoardState
	pendingMu  sync.Mutex
	register   chan registration
	unregister chan Client
	quit       chan struct{}
	done       chan struct{}
	senders    sync.WaitGroup
}

type registration struct {
	client  Client
	initial domain.BoardState
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[Client]*subscriber),
		pending:    make(chan domain.BoardState, 1),
		register:   make(chan registration),
		unregister: make(chan Client),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// BroadcastState never blocks the caller. A state still waiting for Run is
// replaced by the newer one.
func (h *Hub) BroadcastState(ctx context.Context, state domain.BoardState) error {
	h.pendingMu.Lock()
	defer h.pendingMu.Unlock()
	select {
	case old := <-h.pending:
		if old.Supersedes(state) {
			state = old
		}
	default:
	}
	h.pending <- state
	return nil
}

func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case <-h.quit:
			for client, sub := range h.clients {
				close(sub.done)
				client.Close()
				delete(h.clients, client)
			}
			h.senders.Wait()
			return
		case reg := <-h.register:
			sub := newSubscriber(reg.client)
			h.clients[reg.client] = sub
			sub.offer(reg.initial)
			h.senders.Add(1)
			go h.send(sub)
			log.Info().Int("count", len(h.clients)).Str("client_id", reg.client.ID()).Msg("Client registered")
		case client := <-h.unregister:
			if sub, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(sub.done)
				client.Close()
				log.Info().Int("count", len(h.clients)).Str("client_id", client.ID()).Msg("Client unregistered")
			}
		case state := <-h.pending:
			for _, sub := range h.clients {
				sub.offer(state)
			}
		}
	}
}

// send writes states to one client so a slow reader only delays itself.
func (h *Hub) send(sub *subscriber) {
	defer h.senders.Done()
	var last uint64
	for {
		select {
		case <-sub.done:
			return
		case state := <-sub.mailbox:
			if state.Version != 0 && state.Version <= last {
				continue
			}
			if err := sub.client.SendState(state); err != nil {
				log.Error().Err(err).Str("client_id", sub.client.ID()).Msg("Error sending board state")
				select {
				case h.unregister <- sub.client:
				case <-sub.done:
				}
				return
			}
			last = state.Version
		}
	}
}

// Register adds c and delivers initial to it before any older broadcast.
func (h *Hub) Register(c Client, initial domain.BoardState) {
	select {
	case h.register <- registration{client: c, initial: initial}:
	case <-h.done:
		c.Close()
	}
}

func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Stop closes every client and waits for Run and the senders to return.
func (h *Hub) Stop() {
	close(h.quit)
	<-h.done
}

// subscriber holds at most one undelivered state for its client.
type subscriber struct {
	client  Client
	mailbox chan domain.BoardState
	done    chan struct{}
}

func newSubscriber(c Client) *subscriber {
	return &subscriber{
		client:  c,
		mailbox: make(chan domain.BoardState, 1),
		done:    make(chan struct{}),
	}
}

// offer is only called from Run, so the send after the drain cannot block.
func (s *subscriber) offer(state domain.BoardState) {
	select {
	case old := <-s.mailbox:
		if old.Supersedes(state) {
			state = old
		}
	default:
	}
	s.mailbox <- state
}
