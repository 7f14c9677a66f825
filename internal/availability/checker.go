package availability

import "github.com/iliyamo/parking-reservation/internal/model"

// CapacityRemaining returns how many of totalSlots are still free for the
// candidate interval given the already-active intervals at the location.
// Every active interval overlapping the candidate occupies one slot for
// the whole overlap; partial-slot allocation does not exist.  Callers
// must pass only active (pending or confirmed) bookings; cancelled ones
// never count.
func CapacityRemaining(totalSlots uint32, active []Interval, candidate Interval) int {
    booked := 0
    for _, iv := range active {
        if iv.Overlaps(candidate) {
            booked++
        }
    }
    return int(totalSlots) - booked
}

// Admissible decides whether a new booking for candidate may be created
// at a location.  It rejects malformed intervals and locations that are
// not approved before doing any capacity arithmetic; otherwise the
// candidate fits iff at least one slot remains free for the whole
// interval.
func Admissible(status model.LocationStatus, totalSlots uint32, active []Interval, candidate Interval) bool {
    if !candidate.Valid() {
        return false
    }
    if status != model.LocationApproved {
        return false
    }
    return CapacityRemaining(totalSlots, active, candidate) > 0
}

// ActiveIntervals extracts the intervals of the bookings that count
// against capacity.  Cancelled bookings are dropped.
func ActiveIntervals(bookings []model.Booking) []Interval {
    out := make([]Interval, 0, len(bookings))
    for _, b := range bookings {
        if b.Status.Active() {
            out = append(out, Interval{Start: b.StartTime, End: b.EndTime})
        }
    }
    return out
}
