// Package errs provides the standardized error taxonomy for the bookstore
// backend. Every core operation classifies its failure into exactly one of
// the kinds defined here, plus a human-readable message.
//
// The kinds:
//   - ObjectNotFoundError: a referenced account, store, book or order does not exist
//   - ObjectAlreadyExistsError: uniqueness violation on create
//   - UnauthorizedError: credential mismatch or wrong caller
//   - PreconditionFailedError: insufficient funds, insufficient stock, or an
//     order outside the state the requested transition requires
//   - TransientStorageError: an underlying storage call failed; retried by the
//     caller only during account registration, surfaced immediately elsewhere
//   - UnexpectedError: anything else, always surfaced and never swallowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// The HTTP adapter maps the sentinels to status codes; the core never
// inspects messages, only kinds.
package errs
