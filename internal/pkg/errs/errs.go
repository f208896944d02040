package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrValueIsRequired   = fmt.Errorf("value is required")
	ErrValueIsInvalid    = fmt.Errorf("value is invalid")
	ErrObjectNotFound    = fmt.Errorf("object not found")
	ErrAlreadyCompleted  = fmt.Errorf("already completed")
	ErrMissingCredential = fmt.Errorf("credential is missing")
	ErrOracleUnavailable = fmt.Errorf("route oracle is unavailable")
)

// sanitize flattens newlines so error messages stay on a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that no matching object exists. In this
// application "matching" is always scoped by the acting driver, so an
// object owned by another driver also surfaces as not found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AlreadyCompletedError indicates that a matching parcel (or parcel group)
// exists but has already left the pending state. Distinguished from
// ObjectNotFoundError so callers can report a precise outcome on retry.
type AlreadyCompletedError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewAlreadyCompletedError creates an AlreadyCompletedError for the given identifier.
func NewAlreadyCompletedError(paramName string, id any) *AlreadyCompletedError {
	return &AlreadyCompletedError{ParamName: paramName, ID: id}
}

// NewAlreadyCompletedErrorWithCause creates an AlreadyCompletedError with an underlying cause.
func NewAlreadyCompletedErrorWithCause(paramName string, id any, cause error) *AlreadyCompletedError {
	return &AlreadyCompletedError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *AlreadyCompletedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrAlreadyCompleted, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrAlreadyCompleted, sanitize(e.ID))
}

func (e *AlreadyCompletedError) Unwrap() error {
	return ErrAlreadyCompleted
}

// MissingCredentialError indicates that the inbound request carried no
// credential to forward to the route oracle. This is a caller error, not an
// oracle error.
type MissingCredentialError struct {
	ParamName string
}

// NewMissingCredentialError creates a MissingCredentialError for the given parameter.
func NewMissingCredentialError(paramName string) *MissingCredentialError {
	return &MissingCredentialError{ParamName: paramName}
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCredential, sanitize(e.ParamName))
}

func (e *MissingCredentialError) Unwrap() error {
	return ErrMissingCredential
}

// OracleUnavailableError indicates a network failure, timeout, or non-2xx
// response from the route oracle. It is never propagated as fatal to the
// caller of a list or complete operation; the synchronizer degrades to "no
// recommendation" instead.
type OracleUnavailableError struct {
	Operation string
	Cause     error
}

// NewOracleUnavailableError creates an OracleUnavailableError for the given operation.
func NewOracleUnavailableError(operation string, cause error) *OracleUnavailableError {
	return &OracleUnavailableError{Operation: operation, Cause: cause}
}

func (e *OracleUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrOracleUnavailable, sanitize(e.Operation), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrOracleUnavailable, sanitize(e.Operation))
}

func (e *OracleUnavailableError) Unwrap() error {
	return ErrOracleUnavailable
}
