package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for input and lookup failures. Typed errors below wrap
// these so callers can classify with errors.Is without inspecting types.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
)

// Sentinel errors for business-rule and infrastructure failures.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrMissingAssignment = errors.New("missing assignment")
	ErrConflict          = errors.New("conflict")
	ErrDuplicateReview   = errors.New("duplicate review")
	ErrPartialFailure    = errors.New("partial failure")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying lookup failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping the underlying validation failure.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying validation failure.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates that a requested lifecycle transition is
// not allowed from the entity's current state. The message always names both
// states so callers can render a precise rejection.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current and requested states.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError indicates that an entity is not in a state that permits
// the requested operation.
type InvalidStateError struct {
	ParamName string
	State     string
}

// NewInvalidStateError creates an InvalidStateError naming the entity and
// its current state.
func NewInvalidStateError(paramName, state string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.ParamName, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// MissingAssignmentError indicates an attempt to move a parcel in transit
// without supplying the assignment that authorizes the move.
type MissingAssignmentError struct {
	ParcelID string
}

// NewMissingAssignmentError creates a MissingAssignmentError for the parcel.
func NewMissingAssignmentError(parcelID string) *MissingAssignmentError {
	return &MissingAssignmentError{ParcelID: parcelID}
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("%s: parcel %s requires an assignment to move in transit", ErrMissingAssignment, e.ParcelID)
}

func (e *MissingAssignmentError) Unwrap() error {
	return ErrMissingAssignment
}

// ConflictError indicates a lost race on a conditional update. The whole
// operation may be retried by the caller.
type ConflictError struct {
	ParamName string
	ID        any
}

// NewConflictError creates a ConflictError naming the contended entity.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: concurrent update on %s %s", ErrConflict, e.ParamName, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DuplicateReviewError indicates that the reviewer already submitted a
// review for the parcel. The operation is idempotency-violating, not retryable.
type DuplicateReviewError struct {
	ParcelID   string
	ReviewerID string
}

// NewDuplicateReviewError creates a DuplicateReviewError for the
// (parcel, reviewer) pair.
func NewDuplicateReviewError(parcelID, reviewerID string) *DuplicateReviewError {
	return &DuplicateReviewError{ParcelID: parcelID, ReviewerID: reviewerID}
}

func (e *DuplicateReviewError) Error() string {
	return fmt.Sprintf("%s: parcel %s already reviewed by %s", ErrDuplicateReview, e.ParcelID, e.ReviewerID)
}

func (e *DuplicateReviewError) Unwrap() error {
	return ErrDuplicateReview
}

// PartialFailureError indicates that a multi-step operation committed some
// of its effects and then failed to undo them. It must be logged distinctly
// and reconciled, not treated as an ordinary rejection.
type PartialFailureError struct {
	Operation string
	Cause     error
}

// NewPartialFailureError creates a PartialFailureError naming the operation
// that was left partially committed.
func NewPartialFailureError(operation string, cause error) *PartialFailureError {
	return &PartialFailureError{Operation: operation, Cause: cause}
}

func (e *PartialFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPartialFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPartialFailure, e.Operation)
}

func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}

// StoreUnavailableError indicates an infrastructure failure talking to the
// data store. The core never retries it; retry policy belongs to the caller.
type StoreUnavailableError struct {
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError wrapping the
// driver failure.
func NewStoreUnavailableError(cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrStoreUnavailable, e.Cause)
	}
	return ErrStoreUnavailable.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
