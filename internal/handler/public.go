package handler

import (
    "log"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/repository"
)

// PublicHandler serves unauthenticated discovery: browsing approved
// parking locations with a live availability hint.
type PublicHandler struct {
    Locations *repository.LocationRepo
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(locations *repository.LocationRepo) *PublicHandler {
    if locations == nil {
        panic("nil repository passed to NewPublicHandler")
    }
    return &PublicHandler{Locations: locations}
}

// Search handles GET /v1/locations?q=term.  Only approved locations are
// visible; pending and rejected ones never appear here.  available_slots
// reflects occupancy at this instant and is advisory only.
func (h *PublicHandler) Search(c echo.Context) error {
    term := strings.TrimSpace(c.QueryParam("q"))
    locations, err := h.Locations.SearchApproved(c.Request().Context(), term)
    if err != nil {
        log.Printf("location search failed: q=%q: %v", term, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load parking locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": locations})
}
