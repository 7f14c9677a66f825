// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting error strings. The admission path in particular must keep
// "location does not exist", "location not approved" and "no capacity
// left for the interval" apart, since each maps to a different
// user-facing outcome.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because of
// conflicting state, such as confirming a cancelled booking or flipping
// a location between terminal moderation states. Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrLocationNotFound is returned when a referenced location does not
// exist.
var ErrLocationNotFound = errors.New("location not found")

// ErrLocationNotApproved is returned when a booking targets a location
// that has not passed moderation. Pending and rejected locations never
// receive bookings.
var ErrLocationNotApproved = errors.New("location not approved")

// ErrNoCapacity is the admission conflict: every slot at the location is
// taken for some part of the requested interval. It is the one expected,
// frequent failure of a correct booking attempt and carries no internal
// detail.
var ErrNoCapacity = errors.New("no capacity for requested interval")

// ErrBookingNotFound is returned when a referenced booking does not
// exist.
var ErrBookingNotFound = errors.New("booking not found")
