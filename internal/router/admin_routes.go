package router

// This file registers admin-only routes: the moderation workflow for
// vendor-submitted locations and the platform reporting endpoints.  They
// are separate from the generic routes to keep concerns isolated.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/handler"
    "github.com/iliyamo/parking-reservation/internal/middleware"
    "github.com/iliyamo/parking-reservation/internal/model"
)

// RegisterAdmin registers routes that allow admins to moderate locations
// and inspect platform state.  All routes are mounted under /v1/admin and
// require a JWT token as well as the admin role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )
    // Moderation decisions on a pending location
    g.POST("/locations/:id/approve", h.Approve)
    g.POST("/locations/:id/reject", h.Reject)
    // Every location with vendor contact fields
    g.GET("/locations", h.GetLocations)
    // The moderation queue, oldest submission first
    g.GET("/pending", h.Pending)
    // Platform rollups
    g.GET("/stats", h.GetStats)
    g.GET("/users", h.GetUsers)
    g.GET("/bookings", h.GetBookings)
}
