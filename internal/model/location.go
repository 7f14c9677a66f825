package model

import "time"

// LocationStatus is the moderation state of a parking location.  A
// location starts as pending and is moderated exactly once: approval and
// rejection are both terminal.  Only approved locations are visible on
// the public discovery endpoint and eligible to receive bookings.
type LocationStatus string

const (
    LocationPending  LocationStatus = "pending"
    LocationApproved LocationStatus = "approved"
    LocationRejected LocationStatus = "rejected"
)

// ParseLocationStatus maps a raw string onto a LocationStatus.  The
// boolean result is false for values outside the closed set.
func ParseLocationStatus(s string) (LocationStatus, bool) {
    switch LocationStatus(s) {
    case LocationPending:
        return LocationPending, true
    case LocationApproved:
        return LocationApproved, true
    case LocationRejected:
        return LocationRejected, true
    }
    return "", false
}

// CanModerateTo reports whether a moderation transition from the current
// status to target is permitted.  The only real transitions are
// pending -> approved and pending -> rejected; repeating a transition that
// has already been applied is allowed as a harmless no-op.
func (s LocationStatus) CanModerateTo(target LocationStatus) bool {
    switch s {
    case LocationPending:
        return target == LocationApproved || target == LocationRejected
    case LocationApproved:
        return target == LocationApproved
    case LocationRejected:
        return target == LocationRejected
    }
    return false
}

// Location represents a vendor-owned parking facility with fixed slot
// capacity.  This struct corresponds to a row in the `locations` table.
//
// Fields:
//  ID           – primary key identifier.
//  VendorID     – user ID of the owning vendor.
//  Name         – display name of the facility.
//  Address      – street address shown to users.
//  Description  – optional free-text description.
//  PricePerHour – hourly price (DECIMAL in the database).
//  TotalSlots   – fixed capacity; always >= 1.
//  Latitude     – map coordinate, 0 when unknown.
//  Longitude    – map coordinate, 0 when unknown.
//  ImageURL     – opaque reference produced by the upload collaborator.
//  QRCodeURL    – opaque reference to the vendor's payment QR image.
//  Status       – moderation state.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Location struct {
    ID           uint64         // locations.id
    VendorID     uint64         // locations.vendor_id
    Name         string         // locations.name
    Address      string         // locations.address
    Description  string         // locations.description
    PricePerHour float64        // locations.price_per_hour
    TotalSlots   uint32         // locations.total_slots
    Latitude     float64        // locations.latitude
    Longitude    float64        // locations.longitude
    ImageURL     *string        // locations.image_url (nullable)
    QRCodeURL    *string        // locations.qr_code_url (nullable)
    Status       LocationStatus // locations.status
    CreatedAt    time.Time      // locations.created_at
    UpdatedAt    time.Time      // locations.updated_at
}
