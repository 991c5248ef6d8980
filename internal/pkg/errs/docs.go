// Package errs provides the error taxonomy of the ordering core.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrObjectNotFound) that errors.Is matches
//   - a struct carrying the details of the failure and an optional Cause
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// KindOf collapses any error into one of the stable, machine-readable kinds that
// callers at the request boundary report: NotFound, InvalidTransition,
// InsufficientStock, Unauthorized, ValidationError or Internal.
package errs
