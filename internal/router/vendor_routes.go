package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/handler"    // vendor handlers
    "github.com/iliyamo/parking-reservation/internal/middleware" // JWT + role middlewares
    "github.com/iliyamo/parking-reservation/internal/model"
)

// RegisterVendor registers vendor-scoped endpoints under /v1/vendor.
// All routes require a valid JWT and the vendor role.
func RegisterVendor(e *echo.Echo, v *handler.VendorHandler, jwtSecret string) {
    // Attach middlewares at group construction time for clarity.
    g := e.Group(
        "/v1/vendor",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleVendor),
    )

    // ---- Locations ----
    g.POST("/locations", v.Create)
    g.GET("/locations", v.MyLocations)
    g.PUT("/locations/:id", v.Update)
    g.PATCH("/locations/:id", v.Update) // alias for clients that use PATCH; same full-body update
    g.DELETE("/locations/:id", v.Delete)

    // ---- Bookings at the vendor's locations ----
    g.GET("/bookings", v.ListBookings)
}
