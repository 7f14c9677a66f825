package repository

import (
    "errors"
    "testing"

    "github.com/iliyamo/parking-reservation/internal/model"
)

func TestPlanTransition(t *testing.T) {
    cases := []struct {
        name        string
        current     model.BookingStatus
        target      model.BookingStatus
        wantChanged bool
        wantErr     error
    }{
        {"pending to confirmed", model.BookingPending, model.BookingConfirmed, true, nil},
        {"pending to cancelled", model.BookingPending, model.BookingCancelled, true, nil},
        {"confirmed to cancelled", model.BookingConfirmed, model.BookingCancelled, true, nil},
        // Re-applying the current state succeeds but must report no
        // change, so retried confirms trigger no follow-on effects
        // (no duplicate booking.confirmed event, no second UPDATE).
        {"repeat confirm", model.BookingConfirmed, model.BookingConfirmed, false, nil},
        {"repeat cancel", model.BookingCancelled, model.BookingCancelled, false, nil},
        {"confirm after cancel", model.BookingCancelled, model.BookingConfirmed, false, ErrConflict},
        {"revive cancelled", model.BookingCancelled, model.BookingPending, false, ErrConflict},
        {"demote confirmed", model.BookingConfirmed, model.BookingPending, false, ErrConflict},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            changed, err := planTransition(tc.current, tc.target)
            if !errors.Is(err, tc.wantErr) {
                t.Fatalf("planTransition(%s, %s) err = %v, want %v", tc.current, tc.target, err, tc.wantErr)
            }
            if changed != tc.wantChanged {
                t.Fatalf("planTransition(%s, %s) changed = %v, want %v", tc.current, tc.target, changed, tc.wantChanged)
            }
        })
    }
}
