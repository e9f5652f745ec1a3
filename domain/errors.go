package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the acting user does not own the target resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
)

// Validation kinds are stable, machine-readable strings; callers branch
// on them instead of matching message text.
const (
	KindMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	KindTypeMismatch    = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError reports a malformed payload field. It unwraps to
// ErrBadParamInput so errors.Is keeps working at the transport edge.
type ValidationError struct {
	Kind  string
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrBadParamInput }
