// Package errs provides standardized error types for the courier application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of failures:
//   - Input and lookup errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError
//   - Business-rule and infrastructure errors: InvalidTransitionError,
//     InvalidStateError, MissingAssignmentError, ConflictError,
//     DuplicateReviewError, PartialFailureError, StoreUnavailableError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with a cause variant where wrapping makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is can classify
//     failures without type assertions
//
// Handlers and adapters rely on the sentinels to map failures to transport
// responses; the core never swallows an error and always returns enough
// context (entity id, current vs. requested state) for a precise message.
package errs
