package ws

import "github.com/Wyydra/board/internal/core/domain"

type Client interface {
	ID() string
	SendState(state domain.BoardState) error
	Close() error
}
