package domain

import (
	"strings"
	"time"
)

type Message struct {
	ID        MessageID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage is used by stores that assign identity themselves.
func NewMessage(content string, at time.Time) (*Message, error) {
	if IsBlank(content) {
		return nil, ErrEmptyContent
	}
	return &Message{
		ID:        NewMessageID(),
		Content:   content,
		CreatedAt: at,
	}, nil
}

func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
