package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/samber/lo"
)

// MessageRepository is an in-process stand-in for the remote collection.
type MessageRepository struct {
	mu       sync.Mutex
	messages []domain.Message
	now      func() time.Time
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make([]domain.Message, 0),
		now:      time.Now,
	}
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// newest insert first so equal timestamps keep that order
	out := lo.Reverse(append([]domain.Message(nil), r.messages...))
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MessageRepository) Create(ctx context.Context, content string) (domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, err := domain.NewMessage(content, r.now())
	if err != nil {
		return domain.Message{}, err
	}
	r.messages = append(r.messages, *msg)
	return *msg, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id domain.MessageID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, idx, found := lo.FindIndexOf(r.messages, func(m domain.Message) bool {
		return m.ID == id
	})
	if !found {
		return nil
	}
	r.messages = append(r.messages[:idx], r.messages[idx+1:]...)
	return nil
}
