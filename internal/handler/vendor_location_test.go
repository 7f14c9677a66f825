package handler

import (
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/repository"
)

// The handler keeps its repositories as fields and exposes the booking
// listing under a distinct method name; both must stay independently
// addressable.
func TestVendorHandlerBookingListing(t *testing.T) {
    h := NewVendorHandler(&repository.LocationRepo{}, &repository.BookingRepo{})
    if h.Bookings == nil {
        t.Fatal("booking repository field not retained")
    }
    var listing echo.HandlerFunc = h.ListBookings
    if listing == nil {
        t.Fatal("booking listing handler missing")
    }
}
