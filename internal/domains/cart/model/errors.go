package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies recoverable cart operation failures. Every network
// or service failure maps to exactly one kind; none are fatal.
type FailureKind string

const (
	FetchFailed  FailureKind = "FetchFailed"
	AddFailed    FailureKind = "AddFailed"
	UpdateFailed FailureKind = "UpdateFailed"
	RemoveFailed FailureKind = "RemoveFailed"
	ClearFailed  FailureKind = "ClearFailed"
)

// OpError is the error state surfaced by the controller. It wraps the
// underlying transport error but the UI is expected to act on Kind alone.
type OpError struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	cause   error
}

func NewOpError(kind FailureKind, cause error) *OpError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &OpError{Kind: kind, Message: msg, cause: cause}
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *OpError) Unwrap() error {
	return e.cause
}

// ErrInvalidQuantity is a programming error: AddItem must be called with a
// positive quantity. Rejected before any network call.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// IsKind reports whether err is an OpError of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind == kind
	}
	return false
}
