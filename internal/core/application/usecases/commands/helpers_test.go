package commands_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

func testContact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	contact, err := kernel.NewContact(name, name+"@example.com", "+15550100")
	require.NoError(t, err)
	return contact
}

func testDeliveryDate() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func pendingParcel(t *testing.T, id kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		id,
		testContact(t, "alice"),
		testContact(t, "bob"),
		2.5,
		120,
		testDeliveryDate(),
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func onTheWayParcel(t *testing.T, id kernel.UUID, assignmentID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p := pendingParcel(t, id)
	require.NoError(t, p.Assign(assignmentID, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)))
	return p
}

func deliveredParcel(t *testing.T, id kernel.UUID, assignmentID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p := onTheWayParcel(t, id, assignmentID)
	require.NoError(t, p.Deliver(time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)))
	return p
}

func testAssignment(t *testing.T, id, parcelID, agentID kernel.UUID) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(
		id, parcelID, agentID, testContact(t, "carol"),
		testDeliveryDate(),
		time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}

func testAgent(t *testing.T, id kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(id, testContact(t, "carol"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return a
}
