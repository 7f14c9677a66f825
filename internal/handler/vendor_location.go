package handler

import (
    "errors"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/model"
    "github.com/iliyamo/parking-reservation/internal/repository"
)

// VendorHandler serves location management for vendors: submitting new
// locations into moderation, editing and deleting owned ones, and
// viewing bookings made at them.  Ownership is enforced in the
// repository; this layer validates input and translates errors.
type VendorHandler struct {
    Locations *repository.LocationRepo
    Bookings  *repository.BookingRepo
}

// NewVendorHandler constructs a VendorHandler.
func NewVendorHandler(locations *repository.LocationRepo, bookings *repository.BookingRepo) *VendorHandler {
    if locations == nil || bookings == nil {
        panic("nil repository passed to NewVendorHandler")
    }
    return &VendorHandler{Locations: locations, Bookings: bookings}
}

type locationReq struct {
    Name         string  `json:"name"`
    Address      string  `json:"address"`
    Description  string  `json:"description"`
    PricePerHour float64 `json:"price_per_hour"`
    TotalSlots   uint32  `json:"total_slots"`
    Latitude     float64 `json:"latitude"`
    Longitude    float64 `json:"longitude"`
    // Opaque references produced by the upload collaborator; stored as-is.
    ImageURL  string `json:"image_url"`
    QRCodeURL string `json:"qr_code_url"`
}

// validate returns a user-facing message for the first missing or
// malformed field, or "" when the request is well formed.
func (r locationReq) validate() string {
    if strings.TrimSpace(r.Name) == "" {
        return "Name is required"
    }
    if strings.TrimSpace(r.Address) == "" {
        return "Address is required"
    }
    if r.TotalSlots < 1 {
        return "Total slots must be at least 1"
    }
    if r.PricePerHour <= 0 {
        return "Price per hour is required"
    }
    return ""
}

func (r locationReq) toModel() *model.Location {
    loc := &model.Location{
        Name:         strings.TrimSpace(r.Name),
        Address:      strings.TrimSpace(r.Address),
        Description:  strings.TrimSpace(r.Description),
        PricePerHour: r.PricePerHour,
        TotalSlots:   r.TotalSlots,
        Latitude:     r.Latitude,
        Longitude:    r.Longitude,
    }
    if r.ImageURL != "" {
        img := r.ImageURL
        loc.ImageURL = &img
    }
    if r.QRCodeURL != "" {
        qr := r.QRCodeURL
        loc.QRCodeURL = &qr
    }
    return loc
}

// Create handles POST /v1/vendor/locations.  The new location always
// enters moderation as pending regardless of request content.
func (h *VendorHandler) Create(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    var req locationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
    }
    loc := req.toModel()
    if err := h.Locations.Create(c.Request().Context(), vendorID, loc); err != nil {
        log.Printf("location create failed: vendor=%d: %v", vendorID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to add parking location"})
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "success":     true,
        "message":     "Parking location added successfully! Waiting for admin approval.",
        "location_id": loc.ID,
    })
}

// Update handles PUT /v1/vendor/locations/:id.  Permitted in any
// moderation state as long as the caller owns the location.
func (h *VendorHandler) Update(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid location id"})
    }
    var req locationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
    }
    err = h.Locations.Update(c.Request().Context(), id, vendorID, req.toModel())
    switch {
    case err == nil:
        return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Parking location updated successfully!"})
    case errors.Is(err, repository.ErrLocationNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Parking location not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
    default:
        log.Printf("location update failed: vendor=%d location=%d: %v", vendorID, id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to update parking location"})
    }
}

// Delete handles DELETE /v1/vendor/locations/:id.
func (h *VendorHandler) Delete(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid location id"})
    }
    err = h.Locations.Delete(c.Request().Context(), id, vendorID)
    switch {
    case err == nil:
        return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Parking location deleted successfully"})
    case errors.Is(err, repository.ErrLocationNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Parking location not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
    default:
        log.Printf("location delete failed: vendor=%d location=%d: %v", vendorID, id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to delete parking location"})
    }
}

// MyLocations handles GET /v1/vendor/locations: the vendor's own
// locations in every moderation state, newest first.
func (h *VendorHandler) MyLocations(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    locations, err := h.Locations.ListByVendor(c.Request().Context(), vendorID)
    if err != nil {
        log.Printf("list vendor locations failed: vendor=%d: %v", vendorID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load locations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": toLocationViews(locations)})
}

// ListBookings handles GET /v1/vendor/bookings: bookings across all of
// the vendor's locations, newest first, with the booking user's contact
// fields.
func (h *VendorHandler) ListBookings(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unauthorized"})
    }
    details, err := h.Bookings.ListByVendor(c.Request().Context(), vendorID)
    if err != nil {
        log.Printf("list vendor bookings failed: vendor=%d: %v", vendorID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to load bookings"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "data": details})
}

// locationView is the JSON shape for a vendor-visible location.
type locationView struct {
    ID           uint64  `json:"id"`
    Name         string  `json:"name"`
    Address      string  `json:"address"`
    Description  string  `json:"description"`
    PricePerHour float64 `json:"price_per_hour"`
    TotalSlots   uint32  `json:"total_slots"`
    Latitude     float64 `json:"latitude"`
    Longitude    float64 `json:"longitude"`
    ImageURL     *string `json:"image_url,omitempty"`
    QRCodeURL    *string `json:"qr_code_url,omitempty"`
    Status       string  `json:"status"`
    CreatedAt    string  `json:"created_at"`
}

func toLocationViews(locations []model.Location) []locationView {
    out := make([]locationView, 0, len(locations))
    for _, l := range locations {
        out = append(out, locationView{
            ID:           l.ID,
            Name:         l.Name,
            Address:      l.Address,
            Description:  l.Description,
            PricePerHour: l.PricePerHour,
            TotalSlots:   l.TotalSlots,
            Latitude:     l.Latitude,
            Longitude:    l.Longitude,
            ImageURL:     l.ImageURL,
            QRCodeURL:    l.QRCodeURL,
            Status:       string(l.Status),
            CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
        })
    }
    return out
}
