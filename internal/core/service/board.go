package service

import (
	"context"
	"sync"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/Wyydra/board/internal/core/port"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const NotConfiguredBanner = "Message board is not configured"

// BoardService keeps the board state and drives the remote collection.
// The mutex is never held across a remote call.
type BoardService struct {
	collection port.MessageCollection
	gateway    port.StateGateway
	timeout    time.Duration

	mu       sync.Mutex
	state    domain.BoardState
	fetchSeq uint64
}

// NewBoardService accepts a nil collection, in which case the board stays in
// the not configured state and never touches the network. gateway may be nil.
func NewBoardService(collection port.MessageCollection, gateway port.StateGateway, timeout time.Duration) *BoardService {
	s := &BoardService{
		collection: collection,
		gateway:    gateway,
		timeout:    timeout,
	}
	s.state.Version = 1
	s.state.Messages = []domain.Message{}
	s.state.Configured = collection != nil
	if !s.state.Configured {
		s.state.Error = NotConfiguredBanner
	}
	return s
}

func (s *BoardService) State() domain.BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *BoardService) SetDraft(ctx context.Context, draft string) {
	s.update(ctx, func(st *domain.BoardState) {
		st.Draft = draft
	})
}

// Fetch replaces the snapshot with the remote rows, newest first.
// Only the most recently started Fetch may apply its result.
func (s *BoardService) Fetch(ctx context.Context) error {
	if s.collection == nil {
		return s.refuse(ctx)
	}

	var seq uint64
	s.update(ctx, func(st *domain.BoardState) {
		s.fetchSeq++
		seq = s.fetchSeq
		st.Loading = true
	})

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	messages, err := s.collection.List(callCtx)

	var opErr error
	if err != nil {
		opErr = domain.NewRemoteError(domain.OpFetch, err)
		log.Warn().Err(err).Msg("Fetch failed")
	}

	s.update(ctx, func(st *domain.BoardState) {
		if seq != s.fetchSeq {
			log.Debug().Uint64("seq", seq).Uint64("latest", s.fetchSeq).Msg("Dropping stale fetch response")
			return
		}
		if opErr != nil {
			st.Error = opErr.Error()
		} else {
			st.Messages = append(make([]domain.Message, 0, len(messages)), messages...)
			st.Error = ""
		}
		st.Loading = false
	})
	return opErr
}

// Submit creates a row from the current draft and refreshes the snapshot.
// A blank draft is ignored.
func (s *BoardService) Submit(ctx context.Context) error {
	s.mu.Lock()
	content := s.state.Draft
	s.mu.Unlock()
	if domain.IsBlank(content) {
		return nil
	}
	if s.collection == nil {
		return s.refuse(ctx)
	}

	s.update(ctx, func(st *domain.BoardState) {
		st.Submitting = true
	})

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	_, err := s.collection.Create(callCtx, content)
	if err != nil {
		opErr := domain.NewRemoteError(domain.OpCreate, err)
		log.Warn().Err(err).Msg("Submit failed")
		s.update(ctx, func(st *domain.BoardState) {
			st.Submitting = false
			st.Error = opErr.Error()
		})
		return opErr
	}

	s.update(ctx, func(st *domain.BoardState) {
		st.Submitting = false
		st.Draft = ""
	})
	return s.Fetch(ctx)
}

// Post sets the draft and submits it.
func (s *BoardService) Post(ctx context.Context, content string) error {
	s.SetDraft(ctx, content)
	return s.Submit(ctx)
}

// Delete removes a row remotely and prunes it from the snapshot without a re-fetch.
func (s *BoardService) Delete(ctx context.Context, id domain.MessageID) error {
	if id.IsZero() {
		return nil
	}
	if s.collection == nil {
		return s.refuse(ctx)
	}

	s.update(ctx, func(st *domain.BoardState) {
		st.DeletingID = id
	})

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	err := s.collection.Delete(callCtx, id)

	var opErr error
	if err != nil {
		opErr = domain.NewRemoteError(domain.OpDelete, err)
		log.Warn().Err(err).Str("message_id", id.String()).Msg("Delete failed")
	}

	s.update(ctx, func(st *domain.BoardState) {
		if opErr != nil {
			st.Error = opErr.Error()
		} else {
			st.Messages = lo.Reject(st.Messages, func(m domain.Message, _ int) bool {
				return m.ID == id
			})
			st.Error = ""
		}
		// a later Delete may own the marker by now
		if st.DeletingID == id {
			st.DeletingID = ""
		}
	})
	return opErr
}

func (s *BoardService) refuse(ctx context.Context) error {
	s.update(ctx, func(st *domain.BoardState) {
		st.Error = NotConfiguredBanner
	})
	return domain.ErrNotConfigured
}

func (s *BoardService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// update applies fn and publishes the result. Publishing happens under the
// lock so subscribers see states in order; the gateway must not block.
func (s *BoardService) update(ctx context.Context, fn func(st *domain.BoardState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.state.Version++

	if s.gateway == nil {
		return
	}
	if err := s.gateway.BroadcastState(ctx, s.state.Clone()); err != nil {
		log.Error().Err(err).Msg("Failed to broadcast board state")
	}
}
