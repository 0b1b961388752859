// Package errs provides the standardized error taxonomy for the application.
//
// Four kinds of failure are recoverable at the request boundary:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or out-of-range request data, user correctable
//   - ObjectNotFoundError: a referenced table, order, line or product
//     does not exist
//   - InvalidStateError: the operation is not permitted in the object's
//     current lifecycle state
//   - ConflictError: the operation would violate a uniqueness invariant
//
// Each error type follows a consistent pattern: a sentinel error variable,
// a struct carrying details, constructors with and without a cause, an
// Error() method and an Unwrap() method so callers can classify failures
// with errors.Is against the sentinels.
package errs
