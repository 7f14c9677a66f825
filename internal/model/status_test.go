package model

import "testing"

func TestBookingStatusActive(t *testing.T) {
    if !BookingPending.Active() {
        t.Error("pending should count against capacity")
    }
    if !BookingConfirmed.Active() {
        t.Error("confirmed should count against capacity")
    }
    if BookingCancelled.Active() {
        t.Error("cancelled must not count against capacity")
    }
}

func TestBookingStatusTransitions(t *testing.T) {
    cases := []struct {
        from, to BookingStatus
        want     bool
    }{
        {BookingPending, BookingConfirmed, true},
        {BookingPending, BookingCancelled, true},
        {BookingConfirmed, BookingCancelled, true},
        // idempotent re-application of the current state
        {BookingConfirmed, BookingConfirmed, true},
        {BookingCancelled, BookingCancelled, true},
        // nothing leaves cancelled
        {BookingCancelled, BookingPending, false},
        {BookingCancelled, BookingConfirmed, false},
        // confirmed never reverts to pending
        {BookingConfirmed, BookingPending, false},
        {BookingPending, BookingPending, false},
    }
    for _, c := range cases {
        if got := c.from.CanTransitionTo(c.to); got != c.want {
            t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
        }
    }
}

func TestLocationModeration(t *testing.T) {
    cases := []struct {
        from, to LocationStatus
        want     bool
    }{
        {LocationPending, LocationApproved, true},
        {LocationPending, LocationRejected, true},
        // repeating the applied decision is a harmless no-op
        {LocationApproved, LocationApproved, true},
        {LocationRejected, LocationRejected, true},
        // terminal states never flip
        {LocationApproved, LocationRejected, false},
        {LocationRejected, LocationApproved, false},
        {LocationApproved, LocationPending, false},
        {LocationRejected, LocationPending, false},
    }
    for _, c := range cases {
        if got := c.from.CanModerateTo(c.to); got != c.want {
            t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
        }
    }
}

func TestParseBookingStatus(t *testing.T) {
    for _, s := range []string{"pending", "confirmed", "cancelled"} {
        if _, ok := ParseBookingStatus(s); !ok {
            t.Errorf("ParseBookingStatus(%q) rejected a valid status", s)
        }
    }
    for _, s := range []string{"", "PENDING", "completed", "done"} {
        if _, ok := ParseBookingStatus(s); ok {
            t.Errorf("ParseBookingStatus(%q) accepted an invalid status", s)
        }
    }
}
