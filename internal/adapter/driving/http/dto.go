package http

import (
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/samber/lo"
)

type messageDTO struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Deleting  bool      `json:"deleting"`
}

type stateDTO struct {
	Version        uint64       `json:"version"`
	Draft          string       `json:"draft"`
	Messages       []messageDTO `json:"messages"`
	Loading        bool         `json:"loading"`
	Submitting     bool         `json:"submitting"`
	SubmitDisabled bool         `json:"submit_disabled"`
	DeletingID     string       `json:"deleting_id,omitempty"`
	Error          string       `json:"error,omitempty"`
	Configured     bool         `json:"configured"`
}

func toStateDTO(s domain.BoardState) stateDTO {
	return stateDTO{
		Version: s.Version,
		Draft:   s.Draft,
		Messages: lo.Map(s.Messages, func(m domain.Message, _ int) messageDTO {
			return messageDTO{
				ID:        m.ID.String(),
				Content:   m.Content,
				CreatedAt: m.CreatedAt,
				Deleting:  s.DeleteDisabled(m.ID),
			}
		}),
		Loading:        s.Loading,
		Submitting:     s.Submitting,
		SubmitDisabled: s.SubmitDisabled(),
		DeletingID:     s.DeletingID.String(),
		Error:          s.Error,
		Configured:     s.Configured,
	}
}

type draftRequest struct {
	Content *string `json:"content"`
}

type errorResponse struct {
	Error string   `json:"error"`
	State stateDTO `json:"state"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Backend    string `json:"backend"`
	Configured bool   `json:"configured"`
}
