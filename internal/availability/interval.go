// Package availability implements the capacity/admission arithmetic for
// parking locations.  It is pure logic over in-memory values: the
// repository layer is responsible for loading the relevant bookings and
// for making the check-then-insert sequence atomic (see Guard and
// BookingRepo.Create).
package availability

import "time"

// Interval is a half-open time range [Start, End).  A booking ending at
// the exact instant another begins does not overlap it, so back-to-back
// bookings of the same slot are legal.
type Interval struct {
    Start time.Time
    End   time.Time
}

// Valid reports whether the interval is well formed: Start strictly
// before End.  Degenerate and inverted intervals are never admissible.
func (iv Interval) Valid() bool {
    return iv.Start.Before(iv.End)
}

// Overlaps reports whether two half-open intervals share any instant:
// a.Start < b.End && a.End > b.Start.
func (iv Interval) Overlaps(other Interval) bool {
    return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains reports whether t lies inside the interval, honoring the
// half-open boundary (Start inclusive, End exclusive).
func (iv Interval) Contains(t time.Time) bool {
    return !t.Before(iv.Start) && t.Before(iv.End)
}
