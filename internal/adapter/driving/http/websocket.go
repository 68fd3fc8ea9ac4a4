package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict to the configured origin once the page is served from a separate host
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSClient struct {
	id   domain.ClientID
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) ID() string {
	return c.id.String()
}

func (c *WSClient) SendState(state domain.BoardState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(toStateDTO(state))
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

type commandType string

const (
	cmdDraft   commandType = "draft"
	cmdSubmit  commandType = "submit"
	cmdDelete  commandType = "delete"
	cmdRefresh commandType = "refresh"
)

type incomingDTO struct {
	Type    commandType `json:"type"`
	Content string      `json:"content"`
	ID      string      `json:"id"`
}

// HTTP handler
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   domain.NewClientID(),
		conn: conn,
	}

	l := log.With().Str("client_id", client.ID()).Logger()
	l.Info().Msg("New client connected")

	h.Hub.Register(client, h.Board.State())

	defer func() {
		l.Info().Msg("Client disconnected")
		h.Hub.Unregister(client)
		conn.Close()
	}()

	// operations outlive the connection that started them
	ctx := context.WithoutCancel(r.Context())
	go h.run(l, cmdRefresh, func() error { return h.Board.Fetch(ctx) })

	// listening for browser
	for {
		var req incomingDTO
		err := conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			break
		}

		switch req.Type {
		case cmdDraft:
			h.Board.SetDraft(ctx, req.Content)
		case cmdSubmit:
			go h.run(l, req.Type, func() error { return h.Board.Submit(ctx) })
		case cmdDelete:
			id := domain.ParseMessageID(req.ID)
			go h.run(l, req.Type, func() error { return h.Board.Delete(ctx, id) })
		case cmdRefresh:
			go h.run(l, req.Type, func() error { return h.Board.Fetch(ctx) })
		default:
			l.Warn().Str("type", string(req.Type)).Msg("Unknown command")
		}
	}
}

// run executes a board operation. Failures are already in the board state.
func (h *Handler) run(l zerolog.Logger, cmd commandType, op func() error) {
	if err := op(); err != nil {
		l.Debug().Err(err).Str("command", string(cmd)).Msg("Command failed")
	}
}
