//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../../mocks/mock_repository.go -package=mocks
package port

import (
	"context"

	"github.com/Wyydra/board/internal/core/domain"
)

// MessageCollection is the remote "messages" table.
// List returns rows ordered by created_at, newest first.
type MessageCollection interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, content string) (domain.Message, error)
	Delete(ctx context.Context, id domain.MessageID) error
}
