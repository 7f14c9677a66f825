package handler

import (
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/availability"
    "github.com/iliyamo/parking-reservation/internal/queue"
    "github.com/iliyamo/parking-reservation/internal/repository"
    queue_publisher "github.com/iliyamo/parking-reservation/internal/service"
)

// BookingHandler serves the booking lifecycle on behalf of users: create
// (with the atomic admission check), cancel, payment confirmation and
// the per-user listing.  JWT authentication and role validation have
// already run in middleware; identity is read once per request and
// passed down explicitly.
type BookingHandler struct {
    Bookings  *repository.BookingRepo
    Locations *repository.LocationRepo
}

// NewBookingHandler constructs a BookingHandler.  Both repositories are
// required.
func NewBookingHandler(bookings *repository.BookingRepo, locations *repository.LocationRepo) *BookingHandler {
    if bookings == nil || locations == nil {
        panic("nil repository passed to NewBookingHandler")
    }
    return &BookingHandler{Bookings: bookings, Locations: locations}
}

type createBookingReq struct {
    LocationID uint64  `json:"location_id"`
    StartTime  string  `json:"start_time"`
    EndTime    string  `json:"end_time"`
    TotalPrice float64 `json:"total_price"`
}

// validate checks the request before any capacity read happens and
// returns the parsed interval.  The second return value is a user-facing
// message; empty means the request is well formed.
func (r createBookingReq) validate() (availability.Interval, string) {
    if r.LocationID == 0 {
        return availability.Interval{}, "Parking location is required"
    }
    if r.StartTime == "" {
        return availability.Interval{}, "Start time is required"
    }
    if r.EndTime == "" {
        return availability.Interval{}, "End time is required"
    }
    start, ok := parseTimestamp(r.StartTime)
    if !ok {
        return availability.Interval{}, "Invalid start time"
    }
    end, ok := parseTimestamp(r.EndTime)
    if !ok {
        return availability.Interval{}, "Invalid end time"
    }
    iv := availability.Interval{Start: start, End: end}
    if !iv.Valid() {
        return availability.Interval{}, "End time must be after start time"
    }
    if r.TotalPrice < 0 {
        return availability.Interval{}, "Total price cannot be negative"
    }
    return iv, ""
}

// Create handles POST /v1/bookings.  Validation and authorization happen
// before the ledger is touched; the admission check and the insert run as
// one atomic unit inside the repository.  A full location is the single
// expected failure and maps to 409.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    interval, msg := req.validate()
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
    }

    booking, err := h.Bookings.Create(c.Request().Context(), userID, req.LocationID, interval, req.TotalPrice)
    switch {
    case err == nil:
        return c.JSON(http.StatusCreated, echo.Map{
            "success":    true,
            "message":    "Booking created successfully! Please complete payment.",
            "booking_id": booking.ID,
        })
    case errors.Is(err, repository.ErrLocationNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Parking location not found"})
    case errors.Is(err, repository.ErrLocationNotApproved):
        return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Parking location is not approved for booking"})
    case errors.Is(err, repository.ErrNoCapacity):
        return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Slot unavailable for selected time"})
    default:
        log.Printf("booking create failed: user=%d location=%d: %v", userID, req.LocationID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Booking failed"})
    }
}

// Cancel handles DELETE /v1/bookings/:id.  Only the owning user may
// cancel; cancelling an already cancelled booking succeeds without
// touching anything.
func (h *BookingHandler) Cancel(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    bookingID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid booking id"})
    }
    err = h.Bookings.Cancel(c.Request().Context(), bookingID, userID)
    switch {
    case err == nil:
        return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Booking cancelled successfully!"})
    case errors.Is(err, repository.ErrBookingNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Booking not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
    default:
        log.Printf("booking cancel failed: user=%d booking=%d: %v", userID, bookingID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to cancel booking"})
    }
}

type confirmBookingReq struct {
    PaymentReference string `json:"payment_reference"`
}

// Confirm handles POST /v1/bookings/:id/confirm.  The payment
// collaborator acknowledged payment out of band; this transition records
// the proof reference and moves pending to confirmed.  Capacity is
// unaffected since confirmed bookings were already counted as active.
// A booking.confirmed event is published only when the transition
// actually changed state, so a retried confirm never emits a duplicate;
// broker failures are logged inside the publisher and never fail the
// confirmation.
func (h *BookingHandler) Confirm(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    bookingID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid booking id"})
    }
    var req confirmBookingReq
    if err := c.Bind(&req); err != nil || req.PaymentReference == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "payment_reference is required"})
    }

    ctx := c.Request().Context()
    changed, err := h.Bookings.Confirm(ctx, bookingID, userID, req.PaymentReference)
    switch {
    case err == nil:
        // fall through to publish + respond
    case errors.Is(err, repository.ErrBookingNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Booking not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Booking is cancelled and cannot be confirmed"})
    default:
        log.Printf("booking confirm failed: user=%d booking=%d: %v", userID, bookingID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to confirm booking"})
    }

    if changed {
        if booking, err := h.Bookings.GetByID(ctx, bookingID); err == nil {
            ev := queue.BookingConfirmedEvent{
                BookingID:   booking.ID,
                UserID:      booking.UserID,
                LocationID:  booking.LocationID,
                StartTime:   booking.StartTime.Format(time.RFC3339),
                EndTime:     booking.EndTime.Format(time.RFC3339),
                TotalPrice:  booking.TotalPrice,
                PaymentRef:  req.PaymentReference,
                ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
            }
            if loc, err := h.Locations.GetByID(ctx, booking.LocationID); err == nil {
                ev.LocationName = loc.Name
                ev.Address = loc.Address
            }
            _ = queue_publisher.PublishBookingConfirmed(ctx, ev)
        }
    }

    return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Payment confirmed"})
}

// MyBookings handles GET /v1/my-bookings: the user's bookings newest
// first, each enriched with location name and address.
func (h *BookingHandler) MyBookings(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    details, err := h.Bookings.ListByUser(c.Request().Context(), userID)
    if err != nil {
        log.Printf("list bookings failed: user=%d: %v", userID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load bookings"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": details})
}
