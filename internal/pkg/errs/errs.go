package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every failure the engine can report.
// Each operation returns exactly one of these kinds (via errors.Is)
// wrapped in a typed error carrying the details.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrUnauthorized        = errors.New("authorization fail")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrTransientStorage    = errors.New("storage unavailable")
	ErrUnexpected          = errors.New("unexpected error")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that a referenced entity (account, store,
// book, order) does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a uniqueness violation on create
// (duplicate account, store or inventory line).
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError for the given parameter and identifier.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping an underlying cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectAlreadyExists, e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// UnauthorizedError reports a credential mismatch or a caller acting on
// an object they do not own.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError with the given reason.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// PreconditionFailedError reports that the system state does not permit
// the requested operation: insufficient funds, insufficient stock, or an
// order outside the state the transition requires.
type PreconditionFailedError struct {
	Reason string
	ID     any
	Cause  error
}

// NewPreconditionFailedError creates a PreconditionFailedError for the given reason and identifier.
func NewPreconditionFailedError(reason string, id any) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, ID: id}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping an underlying cause.
func NewPreconditionFailedErrorWithCause(reason string, id any, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, ID: id, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %v (cause: %s)", ErrPreconditionFailed, e.Reason, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %v", ErrPreconditionFailed, e.Reason, e.ID))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// TransientStorageError reports a failed storage call. Callers may retry
// a bounded number of times; the engine itself retries only during
// account registration.
type TransientStorageError struct {
	Op    string
	Cause error
}

// NewTransientStorageError creates a TransientStorageError for the failed storage operation.
func NewTransientStorageError(op string, cause error) *TransientStorageError {
	return &TransientStorageError{Op: op, Cause: cause}
}

func (e *TransientStorageError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransientStorage, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransientStorage, e.Op))
}

func (e *TransientStorageError) Unwrap() error {
	return ErrTransientStorage
}

// UnexpectedError reports any failure outside the other kinds. It is
// always surfaced, never swallowed, and is distinguishable from a
// transient storage failure.
type UnexpectedError struct {
	Op    string
	Cause error
}

// NewUnexpectedError creates an UnexpectedError for the failed operation.
func NewUnexpectedError(op string, cause error) *UnexpectedError {
	return &UnexpectedError{Op: op, Cause: cause}
}

func (e *UnexpectedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnexpected, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnexpected, e.Op))
}

func (e *UnexpectedError) Unwrap() error {
	return ErrUnexpected
}

// ValueIsRequiredError reports a missing required value, typically a
// zero-value object that skipped its constructor.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

var ErrValueIsRequired = errors.New("value is required")

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that fails domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

var ErrValueIsInvalid = errors.New("value is invalid")

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
