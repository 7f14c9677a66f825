package availability

import (
    "testing"
    "time"

    "github.com/iliyamo/parking-reservation/internal/model"
)

func at(hour, min int) time.Time {
    return time.Date(2025, 6, 1, hour, min, 0, 0, time.UTC)
}

func iv(startHour, startMin, endHour, endMin int) Interval {
    return Interval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestIntervalValid(t *testing.T) {
    if !iv(10, 0, 11, 0).Valid() {
        t.Error("well-formed interval reported invalid")
    }
    if (Interval{Start: at(10, 0), End: at(10, 0)}).Valid() {
        t.Error("zero-length interval must be invalid")
    }
    if (Interval{Start: at(11, 0), End: at(10, 0)}).Valid() {
        t.Error("inverted interval must be invalid")
    }
}

func TestHalfOpenOverlap(t *testing.T) {
    cases := []struct {
        name string
        a, b Interval
        want bool
    }{
        {"identical", iv(10, 0, 11, 0), iv(10, 0, 11, 0), true},
        {"partial", iv(10, 0, 11, 0), iv(10, 30, 11, 30), true},
        {"contained", iv(10, 0, 12, 0), iv(10, 30, 11, 0), true},
        {"back to back", iv(10, 0, 11, 0), iv(11, 0, 12, 0), false},
        {"back to back reversed", iv(11, 0, 12, 0), iv(10, 0, 11, 0), false},
        {"disjoint", iv(8, 0, 9, 0), iv(10, 0, 11, 0), false},
        {"touch at start", iv(9, 0, 10, 0), iv(10, 0, 10, 30), false},
    }
    for _, c := range cases {
        if got := c.a.Overlaps(c.b); got != c.want {
            t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
        }
        if got := c.b.Overlaps(c.a); got != c.want {
            t.Errorf("%s (swapped): Overlaps = %v, want %v", c.name, got, c.want)
        }
    }
}

func TestIntervalContains(t *testing.T) {
    window := iv(10, 0, 11, 0)
    if !window.Contains(at(10, 0)) {
        t.Error("start instant must be contained (inclusive)")
    }
    if window.Contains(at(11, 0)) {
        t.Error("end instant must not be contained (exclusive)")
    }
    if !window.Contains(at(10, 30)) {
        t.Error("interior instant must be contained")
    }
}

func TestCapacityRemaining(t *testing.T) {
    active := []Interval{
        iv(10, 0, 11, 0),
        iv(10, 30, 11, 30),
        iv(13, 0, 14, 0),
    }
    cases := []struct {
        name      string
        total     uint32
        candidate Interval
        want      int
    }{
        {"two overlaps", 3, iv(10, 45, 11, 15), 1},
        {"no overlaps", 3, iv(15, 0, 16, 0), 3},
        {"exhausted", 2, iv(10, 45, 11, 15), 0},
        {"oversold would go negative", 1, iv(10, 45, 11, 15), -1},
        {"back to back frees slot", 1, iv(11, 30, 12, 30), 1},
    }
    for _, c := range cases {
        if got := CapacityRemaining(c.total, active, c.candidate); got != c.want {
            t.Errorf("%s: CapacityRemaining = %d, want %d", c.name, got, c.want)
        }
    }
}

// Single-slot location: [10:00,11:00) is taken, [11:00,12:00) must be
// admitted and [10:30,11:30) rejected.
func TestSingleSlotBoundary(t *testing.T) {
    active := []Interval{iv(10, 0, 11, 0)}
    if !Admissible(model.LocationApproved, 1, active, iv(11, 0, 12, 0)) {
        t.Error("booking starting exactly at the previous end must be admitted")
    }
    if Admissible(model.LocationApproved, 1, active, iv(10, 30, 11, 30)) {
        t.Error("overlapping booking must be rejected at capacity 1")
    }
}

func TestAdmissibleRejectsBadInput(t *testing.T) {
    if Admissible(model.LocationApproved, 1, nil, Interval{Start: at(11, 0), End: at(10, 0)}) {
        t.Error("inverted interval admitted")
    }
    if Admissible(model.LocationApproved, 1, nil, Interval{Start: at(10, 0), End: at(10, 0)}) {
        t.Error("empty interval admitted")
    }
    if Admissible(model.LocationPending, 5, nil, iv(10, 0, 11, 0)) {
        t.Error("pending location admitted a booking")
    }
    if Admissible(model.LocationRejected, 5, nil, iv(10, 0, 11, 0)) {
        t.Error("rejected location admitted a booking")
    }
}

// Cancelling the only active booking must free its slot.
func TestCancellationFreesCapacity(t *testing.T) {
    bookings := []model.Booking{{
        StartTime: at(10, 0),
        EndTime:   at(11, 0),
        Status:    model.BookingConfirmed,
    }}
    candidate := iv(10, 30, 11, 30)
    if Admissible(model.LocationApproved, 1, ActiveIntervals(bookings), candidate) {
        t.Fatal("overlapping candidate admitted while slot is taken")
    }
    bookings[0].Status = model.BookingCancelled
    if !Admissible(model.LocationApproved, 1, ActiveIntervals(bookings), candidate) {
        t.Fatal("candidate still rejected after the blocking booking was cancelled")
    }
}

func TestActiveIntervalsFiltersCancelled(t *testing.T) {
    bookings := []model.Booking{
        {StartTime: at(9, 0), EndTime: at(10, 0), Status: model.BookingPending},
        {StartTime: at(10, 0), EndTime: at(11, 0), Status: model.BookingCancelled},
        {StartTime: at(11, 0), EndTime: at(12, 0), Status: model.BookingConfirmed},
    }
    got := ActiveIntervals(bookings)
    if len(got) != 2 {
        t.Fatalf("ActiveIntervals returned %d intervals, want 2", len(got))
    }
}
