package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Wyydra/board/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/board/internal/adapter/driven/persistence/memory"
	"github.com/Wyydra/board/internal/adapter/driven/persistence/postgres"
	"github.com/Wyydra/board/internal/adapter/driven/persistence/supabase"
	handler "github.com/Wyydra/board/internal/adapter/driving/http"
	"github.com/Wyydra/board/internal/config"
	"github.com/Wyydra/board/internal/core/port"
	"github.com/Wyydra/board/internal/core/service"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// NewCollection builds the collection for the configured backend. It returns a
// nil collection, not an error, when the backend is not configured.
func NewCollection(ctx context.Context, cfg *config.Config) (port.MessageCollection, func(), error) {
	noop := func() {}
	if !cfg.Configured() {
		log.Warn().Str("backend", cfg.Backend).Msg("Message board is not configured, remote operations are disabled")
		return nil, noop, nil
	}

	switch cfg.Backend {
	case config.BackendSupabase:
		c, err := supabase.NewCollection(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Table, nil)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("url", cfg.SupabaseURL).Str("table", cfg.Table).Msg("Using hosted collection")
		return c, noop, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		c := postgres.NewCollection(pool, cfg.Table)
		if err := c.Migrate(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return c, pool.Close, nil

	case config.BackendMemory:
		log.Info().Msg("Using in-memory collection")
		return memory.NewMessageRepository(), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config) error {
	collection, closeCollection, err := NewCollection(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCollection()

	hub := ws.NewHub()
	board := service.NewBoardService(collection, hub, cfg.RequestTimeout)
	h := handler.NewHandler(board, hub, cfg.Backend, cfg.StaticDir)

	go hub.Run()
	go func() {
		if err := board.Fetch(ctx); err != nil {
			log.Warn().Err(err).Msg("Initial fetch failed")
		}
	}()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h.NewRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		hub.Stop()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()
	log.Info().Msg("Server exited")
	return nil
}
