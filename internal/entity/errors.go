package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrMessageTooLong    = errors.New("message exceeds maximum length")
)

// IllegalTransitionError reports an action that does not apply to the
// record's current status. It matches ErrIllegalTransition under
// errors.Is so callers can branch without inspecting fields.
type IllegalTransitionError struct {
	Kind    string
	Current string
	Action  string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: %s action %q does not apply to status %q", e.Kind, e.Action, e.Current)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
