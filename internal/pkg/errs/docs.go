// Package errs provides the error taxonomy of the purchasing service.
//
// Each kind follows the same shape: a sentinel (ErrValueIsRequired, ErrInvalidState, ...),
// a struct carrying the details, constructors with and without a cause, an Error method
// and an Unwrap method so callers can classify failures with errors.Is and errors.As.
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError: field validation, both match ErrValidation
//   - InvalidStateError: the order status does not allow the operation
//   - AuthorizationError: the actor lacks the role or ownership
//   - ConflictError: a concurrent request changed the order first
//   - ObjectNotFoundError: nothing stored under the identifier
//   - RepositoryError: the storage backend failed; the cause is kept verbatim
package errs
