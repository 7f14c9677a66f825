// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a parking booking is successfully
// confirmed.  It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID    uint64  `json:"booking_id"`
    UserID       uint64  `json:"user_id"`
    LocationID   uint64  `json:"location_id"`
    LocationName string  `json:"location_name"`
    Address      string  `json:"address"`
    StartTime    string  `json:"start_time"`
    EndTime      string  `json:"end_time"`
    TotalPrice   float64 `json:"total_price"`
    PaymentRef   string  `json:"payment_ref"`
    ConfirmedAt  string  `json:"confirmed_at"`
}
