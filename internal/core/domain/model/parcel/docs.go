// Package parcel implements the parcel aggregate and its delivery lifecycle.
//
// The package centers on two types:
//   - Status: the delivery state machine (pending, on_the_way, delivered,
//     canceled) with an explicit transition table
//   - Parcel: the aggregate root owning booking data, the status, the
//     assignment reference, and the orthogonal paid flag
//
// The lifecycle invariant is enforced in one place: every status change goes
// through Status.TransitionTo, and the aggregate keeps the assignment
// reference consistent with the status (non-nil iff in transit or delivered).
// Payment is modeled as a separate boolean rather than a status value, since
// a parcel may be paid at any point of its delivery progression.
package parcel
