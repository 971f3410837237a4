package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Business error taxonomy. Controllers map these onto HTTP statuses, handlers
// return them wrapped with pkg/errors so the cause survives for errors.Is.
var (
	ErrNotFound             = errors.New("record not found")
	ErrAuthorizationDenied  = errors.New("operation not permitted")
	ErrValidation           = errors.New("validation failed")
	ErrNoApproverConfigured = errors.New("no eligible approver configured")
)

// InvalidTransitionError reports a lifecycle event requested from a status
// that forbids it. The current status is part of the message so the caller
// can re-fetch and retry deliberately.
type InvalidTransitionError struct {
	Event  string
	Status RequirementStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s requirement with status %s", e.Event, e.Status)
}

func NewInvalidTransition(event string, status RequirementStatus) error {
	return &InvalidTransitionError{Event: event, Status: status}
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}
