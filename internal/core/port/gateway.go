//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=../../mocks/mock_gateway.go -package=mocks
package port

import (
	"context"

	"github.com/Wyydra/board/internal/core/domain"
)

type StateGateway interface {
	BroadcastState(ctx context.Context, state domain.BoardState) error
}
