// Package errs provides standardized error types for the food-ordering backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy mirrors how callers are expected to react:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input, caller-fixable
//   - ObjectNotFoundError: the referenced resource does not exist
//   - BusinessRuleError: a domain invariant was violated (illegal status
//     transition, insufficient stock); never retried by the domain layer
//   - ConflictError: reserved for optimistic-concurrency enforcement
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
package errs
