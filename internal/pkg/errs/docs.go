// Package errs provides the shared error types of the ordering backend.
//
// The package includes:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input validation failures
//   - ForbiddenError: the caller holds none of the roles an action accepts
//
// Each type pairs with a sentinel (ErrObjectNotFound, ErrForbidden, ...) returned by Unwrap,
// so callers classify failures with errors.Is and inspect details with errors.As.
// Constructors come in two flavours, with and without an underlying cause.
package errs
