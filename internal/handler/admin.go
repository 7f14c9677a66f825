package handler

import (
    "errors"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/model"
    "github.com/iliyamo/parking-reservation/internal/repository"
)

// AdminHandler serves the moderation workflow and the reporting
// endpoints.  Every route carrying this handler is behind
// RequireRole(admin); the handlers still never trust request data for
// authorization decisions.
type AdminHandler struct {
    Locations *repository.LocationRepo
    Bookings  *repository.BookingRepo
    Users     *repository.UserRepo
    Stats     *repository.StatsRepo
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(locations *repository.LocationRepo, bookings *repository.BookingRepo, users *repository.UserRepo, stats *repository.StatsRepo) *AdminHandler {
    if locations == nil || bookings == nil || users == nil || stats == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{Locations: locations, Bookings: bookings, Users: users, Stats: stats}
}

// Approve handles POST /v1/admin/locations/:id/approve.  Approval is
// one-way out of pending; re-approving an approved location is a
// harmless no-op.
func (h *AdminHandler) Approve(c echo.Context) error {
    return h.moderate(c, model.LocationApproved, "Approved")
}

// Reject handles POST /v1/admin/locations/:id/reject.
func (h *AdminHandler) Reject(c echo.Context) error {
    return h.moderate(c, model.LocationRejected, "Rejected")
}

func (h *AdminHandler) moderate(c echo.Context, target model.LocationStatus, okMsg string) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid location id"})
    }
    err = h.Locations.Moderate(c.Request().Context(), id, target)
    switch {
    case err == nil:
        return c.JSON(http.StatusOK, echo.Map{"success": true, "message": okMsg})
    case errors.Is(err, repository.ErrLocationNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Parking location not found"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Location has already been moderated"})
    default:
        log.Printf("moderation failed: location=%d target=%s: %v", id, target, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to update location"})
    }
}

// GetLocations handles GET /v1/admin/locations: every location in any
// state, with vendor contact fields.
func (h *AdminHandler) GetLocations(c echo.Context) error {
    locations, err := h.Locations.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("admin list locations failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toAdminLocationViews(locations)})
}

// Pending handles GET /v1/admin/pending: the moderation queue, oldest
// submission first.
func (h *AdminHandler) Pending(c echo.Context) error {
    locations, err := h.Locations.ListPending(c.Request().Context())
    if err != nil {
        log.Printf("admin list pending failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load pending locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toAdminLocationViews(locations)})
}

// GetStats handles GET /v1/admin/stats.  Rollups are read-committed and
// never block the booking path.
func (h *AdminHandler) GetStats(c echo.Context) error {
    stats, err := h.Stats.GetStats(c.Request().Context())
    if err != nil {
        log.Printf("admin stats failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load stats"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": stats})
}

// GetUsers handles GET /v1/admin/users.
func (h *AdminHandler) GetUsers(c echo.Context) error {
    users, err := h.Users.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("admin list users failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load users"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": users})
}

// GetBookings handles GET /v1/admin/bookings.
func (h *AdminHandler) GetBookings(c echo.Context) error {
    bookings, err := h.Bookings.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("admin list bookings failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load bookings"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": bookings})
}

// adminLocationView is the JSON shape for the admin location listing.
type adminLocationView struct {
    locationView
    VendorID    uint64 `json:"vendor_id"`
    VendorName  string `json:"vendor_name"`
    VendorEmail string `json:"vendor_email"`
}

func toAdminLocationViews(locations []repository.AdminLocation) []adminLocationView {
    out := make([]adminLocationView, 0, len(locations))
    for _, l := range locations {
        views := toLocationViews([]model.Location{l.Location})
        out = append(out, adminLocationView{
            locationView: views[0],
            VendorID:     l.VendorID,
            VendorName:   l.VendorName,
            VendorEmail:  l.VendorEmail,
        })
    }
    return out
}
