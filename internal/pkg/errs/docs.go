// Package errs provides standardized error types for the parcel route
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - AlreadyCompletedError: For when a lifecycle transition was already performed
//   - MissingCredentialError: For when a forwarded credential is absent
//   - OracleUnavailableError: For when the route oracle cannot be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// internal error identity decoupled from transport-specific status codes.
package errs
