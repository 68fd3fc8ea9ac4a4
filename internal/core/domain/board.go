package domain

// BoardState is a copy of the board as the UI should render it.
// Version grows with every change; zero means unversioned.
type BoardState struct {
	Version    uint64    `json:"version"`
	Draft      string    `json:"draft"`
	Messages   []Message `json:"messages"`
	Loading    bool      `json:"loading"`
	Submitting bool      `json:"submitting"`
	DeletingID MessageID `json:"deleting_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	Configured bool      `json:"configured"`
}

func (s BoardState) SubmitDisabled() bool {
	return !s.Configured || s.Submitting || IsBlank(s.Draft)
}

// DeleteDisabled is true exactly while id is the one being deleted.
func (s BoardState) DeleteDisabled(id MessageID) bool {
	return !s.DeletingID.IsZero() && s.DeletingID == id
}

// Supersedes reports whether s must not be replaced by other.
func (s BoardState) Supersedes(other BoardState) bool {
	return s.Version != 0 && other.Version != 0 && s.Version > other.Version
}

func (s BoardState) Clone() BoardState {
	c := s
	c.Messages = make([]Message, len(s.Messages))
	copy(c.Messages, s.Messages)
	return c
}
