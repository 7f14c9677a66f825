package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/handler"
    "github.com/iliyamo/parking-reservation/internal/middleware"
    "github.com/iliyamo/parking-reservation/internal/model"
)

// RegisterUser registers user-scoped endpoints under /v1.  All routes
// require a valid JWT and the user role.  Users can create bookings,
// cancel them, confirm payment and view their own bookings.
func RegisterUser(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleUser),
    )
    // Note: GET /v1/locations is registered on the public router so that
    // guests can browse approved locations.  User-specific endpoints begin
    // here.
    g.POST("/bookings", h.Create)
    g.DELETE("/bookings/:id", h.Cancel)
    g.POST("/bookings/:id/confirm", h.Confirm)
    g.GET("/my-bookings", h.MyBookings)
}
