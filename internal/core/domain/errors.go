package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRemote        = errors.New("remote operation failed")
	ErrNotConfigured = errors.New("message board is not configured")
	ErrEmptyContent  = errors.New("message content cannot be empty")
)

type Operation string

const (
	OpFetch  Operation = "fetch messages"
	OpCreate Operation = "add message"
	OpDelete Operation = "delete message"
)

// RemoteError is the single error kind surfaced to the board.
type RemoteError struct {
	Op     Operation
	Reason string
	Err    error
}

func NewRemoteError(op Operation, err error) *RemoteError {
	return &RemoteError{Op: op, Reason: err.Error(), Err: err}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Op, e.Reason)
}

func (e *RemoteError) Unwrap() []error {
	return []error{ErrRemote, e.Err}
}
