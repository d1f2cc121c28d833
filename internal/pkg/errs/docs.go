// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels let callers classify failures with errors.Is without
// depending on message text, which the HTTP boundary relies on when mapping
// domain failures to status codes.
package errs
