package http

import (
	"net/http"

	"github.com/Wyydra/board/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/board/internal/core/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	Board     *service.BoardService
	Hub       *ws.Hub
	Backend   string
	StaticDir string
}

func NewHandler(board *service.BoardService, hub *ws.Hub, backend, staticDir string) *Handler {
	return &Handler{
		Board:     board,
		Hub:       hub,
		Backend:   backend,
		StaticDir: staticDir,
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Get("/ws", h.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Put("/draft", h.PutDraft)
		r.Post("/messages", h.Submit)
		r.Post("/messages/refresh", h.Refresh)
		r.Delete("/messages/{id}", h.DeleteMessage)
	})

	if h.StaticDir != "" {
		fs := http.FileServer(http.Dir(h.StaticDir))
		r.Handle("/*", fs)
	}

	return r
}
