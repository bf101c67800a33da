package errs_test

import (
	"errors"
	"testing"

	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", "123")

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("parcelId", "123", cause)

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("rating", -5, 1, 5, cause)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is rating, min value is 1, max value is 5 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("agentId")

		assert.Equal(t, "agentId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: agentId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("agentId", cause)

		assert.Equal(t, "agentId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: agentId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("names both states", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "canceled")

		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "canceled", err.To)
		assert.Equal(t, "invalid transition: from delivered to canceled", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("names entity and state", func(t *testing.T) {
		err := errs.NewInvalidStateError("parcel", "canceled")

		assert.Equal(t, "invalid state: parcel is canceled", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestMissingAssignmentError(t *testing.T) {
	t.Run("names the parcel", func(t *testing.T) {
		err := errs.NewMissingAssignmentError("p-1")

		assert.Equal(t, "p-1", err.ParcelID)
		assert.Equal(t,
			"missing assignment: parcel p-1 requires an assignment to move in transit",
			err.Error())
		assert.Equal(t, errs.ErrMissingAssignment, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("names the contended entity", func(t *testing.T) {
		err := errs.NewConflictError("parcel", "p-1")

		assert.Equal(t, "conflict: concurrent update on parcel p-1", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestDuplicateReviewError(t *testing.T) {
	t.Run("names parcel and reviewer", func(t *testing.T) {
		err := errs.NewDuplicateReviewError("p-1", "r-1")

		assert.Equal(t, "duplicate review: parcel p-1 already reviewed by r-1", err.Error())
		assert.Equal(t, errs.ErrDuplicateReview, err.Unwrap())
	})
}

func TestPartialFailureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("rollback failed")
		err := errs.NewPartialFailureError("assign parcel", cause)

		assert.Equal(t, "partial failure: assign parcel (cause: rollback failed)", err.Error())
		assert.Equal(t, errs.ErrPartialFailure, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPartialFailureError("assign parcel", nil)

		assert.Equal(t, "partial failure: assign parcel", err.Error())
	})
}

func TestStoreUnavailableError(t *testing.T) {
	t.Run("wraps the driver failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStoreUnavailableError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "store unavailable (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrMissingAssignment)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrDuplicateReview)
		require.Error(t, errs.ErrPartialFailure)
		require.Error(t, errs.ErrStoreUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "missing assignment", errs.ErrMissingAssignment.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "duplicate review", errs.ErrDuplicateReview.Error())
		assert.Equal(t, "partial failure", errs.ErrPartialFailure.Error())
		assert.Equal(t, "store unavailable", errs.ErrStoreUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("parcelId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("agentId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "delivered"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInvalidStateError("parcel", "canceled"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewMissingAssignmentError("p-1"), errs.ErrMissingAssignment)
		require.ErrorIs(t, errs.NewConflictError("agent", "a-1"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewDuplicateReviewError("p-1", "r-1"), errs.ErrDuplicateReview)
		require.ErrorIs(t, errs.NewPartialFailureError("assign parcel", nil), errs.ErrPartialFailure)
		require.ErrorIs(t, errs.NewStoreUnavailableError(errors.New("x")), errs.ErrStoreUnavailable)
	})
}
