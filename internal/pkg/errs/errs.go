package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the category every field-level validation failure belongs to.
	// Use errors.Is(err, ErrValidation) to detect any of them.
	ErrValidation = errors.New("validation failed")

	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrObjectNotFound  = errors.New("object not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrAuthorization   = errors.New("not authorized")
	ErrConflict        = errors.New("concurrent modification")
	ErrRepository      = errors.New("repository error")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// Is makes the error match ErrValidation in addition to its own sentinel.
func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrValidation
}

// ValueIsInvalidError reports a value that is present but breaks a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrValidation
}

// ObjectNotFoundError reports a lookup by identifier that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError reports an operation that the current lifecycle state does not allow.
type InvalidStateError struct {
	Action string
	State  string
}

func NewInvalidStateError(action, state string) *InvalidStateError {
	return &InvalidStateError{Action: action, State: state}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s in %s status", ErrInvalidState, e.Action, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AuthorizationError reports an actor lacking the role or ownership an action requires.
type AuthorizationError struct {
	Action string
	Reason string
}

func NewAuthorizationError(action, reason string) *AuthorizationError {
	return &AuthorizationError{Action: action, Reason: reason}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrAuthorization, e.Action, e.Reason)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// ConflictError reports a lost compare-and-swap: the object changed since it was read.
type ConflictError struct {
	ParamName string
	ID        any
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another request", ErrConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// RepositoryError wraps a storage backend failure. Both ErrRepository and the
// backend cause stay reachable through errors.Is and errors.As.
type RepositoryError struct {
	Operation string
	Cause     error
}

func NewRepositoryError(operation string, cause error) *RepositoryError {
	return &RepositoryError{Operation: operation, Cause: cause}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrRepository, e.Operation, e.Cause)
}

func (e *RepositoryError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRepository}
	}
	return []error{ErrRepository, e.Cause}
}
