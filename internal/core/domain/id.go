package domain

import (
	"strings"

	"github.com/google/uuid"
)

type ClientID uuid.UUID

func NewClientID() ClientID {
	return ClientID(uuid.New())
}

func (id ClientID) String() string {
	return uuid.UUID(id).String()
}

// MessageID is assigned by the remote store. Its format is opaque to the board.
type MessageID string

func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func ParseMessageID(s string) MessageID {
	return MessageID(strings.TrimSpace(s))
}

func (id MessageID) String() string {
	return string(id)
}

func (id MessageID) IsZero() bool {
	return id == ""
}
