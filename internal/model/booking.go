package model

import "time"

// BookingStatus is the lifecycle state of a booking.  Both pending and
// confirmed bookings count against a location's capacity; cancelled is
// terminal and frees capacity immediately.
type BookingStatus string

const (
    BookingPending   BookingStatus = "pending"
    BookingConfirmed BookingStatus = "confirmed"
    BookingCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus maps a raw string onto a BookingStatus.  The boolean
// result is false for values outside the closed set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
    switch BookingStatus(s) {
    case BookingPending:
        return BookingPending, true
    case BookingConfirmed:
        return BookingConfirmed, true
    case BookingCancelled:
        return BookingCancelled, true
    }
    return "", false
}

// Active reports whether a booking in this state occupies one unit of the
// location's capacity.  Cancelled bookings never count.
func (s BookingStatus) Active() bool {
    return s == BookingPending || s == BookingConfirmed
}

// CanTransitionTo reports whether the lifecycle transition to target is
// permitted.  Allowed: pending -> confirmed, pending -> cancelled and
// confirmed -> cancelled.  Re-applying the current terminal state
// (cancelling a cancelled booking, confirming a confirmed one) is treated
// as an idempotent no-op and therefore permitted; nothing transitions out
// of cancelled.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
    switch s {
    case BookingPending:
        return target == BookingConfirmed || target == BookingCancelled
    case BookingConfirmed:
        return target == BookingConfirmed || target == BookingCancelled
    case BookingCancelled:
        return target == BookingCancelled
    }
    return false
}

// Booking records a user's claim on one unit of a location's capacity for
// the half-open interval [StartTime, EndTime).  This struct corresponds
// to a row in the `bookings` table.  All timestamps are UTC.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – user who created the booking.
//  LocationID   – location being booked (non-owning reference).
//  StartTime    – inclusive start of the interval.
//  EndTime      – exclusive end of the interval; always after StartTime.
//  Status       – lifecycle state.
//  TotalPrice   – total price for the interval (DECIMAL in the database).
//  PaymentProof – opaque payment reference set when confirmed.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Booking struct {
    ID           uint64        // bookings.id
    UserID       uint64        // bookings.user_id
    LocationID   uint64        // bookings.location_id
    StartTime    time.Time     // bookings.start_time
    EndTime      time.Time     // bookings.end_time
    Status       BookingStatus // bookings.status
    TotalPrice   float64       // bookings.total_price
    PaymentProof *string       // bookings.payment_proof (nullable)
    CreatedAt    time.Time     // bookings.created_at
    UpdatedAt    time.Time     // bookings.updated_at
}
