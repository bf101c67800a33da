package parcel_test

import (
	"fmt"
	"testing"

	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.Unknown))
		assert.Equal(t, 1, int(parcel.Pending))
		assert.Equal(t, 2, int(parcel.OnTheWay))
		assert.Equal(t, 3, int(parcel.Delivered))
		assert.Equal(t, 4, int(parcel.Canceled))
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   parcel.Status
		expected string
	}{
		{parcel.Unknown, "unknown"},
		{parcel.Pending, "pending"},
		{parcel.OnTheWay, "on_the_way"},
		{parcel.Delivered, "delivered"},
		{parcel.Canceled, "canceled"},
		{parcel.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []parcel.Status{
			parcel.Pending,
			parcel.OnTheWay,
			parcel.Delivered,
			parcel.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []parcel.Status{
			parcel.Unknown,
			parcel.Status(-1),
			parcel.Status(5),
			parcel.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected parcel.Status
		}{
			{"pending", parcel.Pending},
			{"on_the_way", parcel.OnTheWay},
			{"delivered", parcel.Delivered},
			{"canceled", parcel.Canceled},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				status, err := parcel.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Paid", "PENDING", "in transit"} {
			_, err := parcel.StatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allStatuses := []parcel.Status{
		parcel.Pending,
		parcel.OnTheWay,
		parcel.Delivered,
		parcel.Canceled,
	}

	allowed := map[parcel.Status]map[parcel.Status]bool{
		parcel.Pending:  {parcel.OnTheWay: true, parcel.Canceled: true},
		parcel.OnTheWay: {parcel.Delivered: true},
	}

	t.Run("exhaustive pairs match the table", func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				name := fmt.Sprintf("%s to %s", from, to)
				t.Run(name, func(t *testing.T) {
					newStatus, err := from.TransitionTo(to)

					if allowed[from][to] {
						require.NoError(t, err)
						assert.Equal(t, to, newStatus)
					} else {
						require.ErrorIs(t, err, errs.ErrInvalidTransition)
						assert.Contains(t, err.Error(), from.String())
						assert.Contains(t, err.Error(), to.String())
					}
				})
			}
		}
	})

	t.Run("terminal states permit no transition", func(t *testing.T) {
		for _, terminal := range []parcel.Status{parcel.Delivered, parcel.Canceled} {
			assert.True(t, terminal.IsTerminal())
			for _, to := range allStatuses {
				assert.False(t, terminal.CanTransitionTo(to),
					"%s should not transition to %s", terminal, to)
			}
		}
	})

	t.Run("non-terminal states are not terminal", func(t *testing.T) {
		assert.False(t, parcel.Pending.IsTerminal())
		assert.False(t, parcel.OnTheWay.IsTerminal())
	})

	t.Run("transition to an invalid target is rejected", func(t *testing.T) {
		_, err := parcel.Pending.TransitionTo(parcel.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ValidateCanHaveAssignment(t *testing.T) {
	t.Run("pending parcel must not have an assignment", func(t *testing.T) {
		require.NoError(t, parcel.Pending.ValidateCanHaveAssignment(false))
		require.Error(t, parcel.Pending.ValidateCanHaveAssignment(true))
	})

	t.Run("canceled parcel must not have an assignment", func(t *testing.T) {
		require.NoError(t, parcel.Canceled.ValidateCanHaveAssignment(false))
		require.Error(t, parcel.Canceled.ValidateCanHaveAssignment(true))
	})

	t.Run("in-transit parcel must have an assignment", func(t *testing.T) {
		require.NoError(t, parcel.OnTheWay.ValidateCanHaveAssignment(true))
		require.Error(t, parcel.OnTheWay.ValidateCanHaveAssignment(false))
	})

	t.Run("delivered parcel must have an assignment", func(t *testing.T) {
		require.NoError(t, parcel.Delivered.ValidateCanHaveAssignment(true))
		require.Error(t, parcel.Delivered.ValidateCanHaveAssignment(false))
	})
}
