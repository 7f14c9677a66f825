package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/parking-reservation/internal/model"
)

// LocationRepo provides CRUD and moderation operations for parking
// locations.  Vendor ownership is enforced inside the queries themselves
// (WHERE vendor_id = ?) so a mismatched vendor surfaces as ErrForbidden
// rather than silently updating nothing.  All timestamp fields are
// stored in UTC.
type LocationRepo struct {
    db *sql.DB
}

// NewLocationRepo returns a new LocationRepo bound to the given database.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions that
// span repositories.
func (r *LocationRepo) DB() *sql.DB { return r.db }

// Create inserts a new location owned by vendorID with status pending and
// returns the populated record.  Moderation state is never caller
// supplied.
func (r *LocationRepo) Create(ctx context.Context, vendorID uint64, loc *model.Location) error {
    const q = `INSERT INTO locations
               (vendor_id, name, address, description, price_per_hour, total_slots,
                latitude, longitude, image_url, qr_code_url, status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending')`
    res, err := r.db.ExecContext(ctx, q,
        vendorID, loc.Name, loc.Address, loc.Description, loc.PricePerHour, loc.TotalSlots,
        loc.Latitude, loc.Longitude, loc.ImageURL, loc.QRCodeURL,
    )
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    loc.ID = uint64(id)
    loc.VendorID = vendorID
    loc.Status = model.LocationPending
    // Query back the row to populate database-generated timestamps.
    const sel = `SELECT created_at, updated_at FROM locations WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, loc.ID).Scan(&loc.CreatedAt, &loc.UpdatedAt)
}

// Update edits the vendor-mutable fields of a location.  Permitted in any
// moderation state, but only for the owning vendor; ErrLocationNotFound
// and ErrForbidden distinguish a missing row from a foreign one.
func (r *LocationRepo) Update(ctx context.Context, id, vendorID uint64, loc *model.Location) error {
    owner, err := r.ownerOf(ctx, id)
    if err != nil {
        return err
    }
    if owner != vendorID {
        return ErrForbidden
    }
    const q = `UPDATE locations
               SET name = ?, address = ?, description = ?, price_per_hour = ?, total_slots = ?
               WHERE id = ? AND vendor_id = ?`
    _, err = r.db.ExecContext(ctx, q,
        loc.Name, loc.Address, loc.Description, loc.PricePerHour, loc.TotalSlots, id, vendorID)
    return err
}

// Delete removes a location owned by vendorID.
func (r *LocationRepo) Delete(ctx context.Context, id, vendorID uint64) error {
    owner, err := r.ownerOf(ctx, id)
    if err != nil {
        return err
    }
    if owner != vendorID {
        return ErrForbidden
    }
    _, err = r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ? AND vendor_id = ?`, id, vendorID)
    return err
}

func (r *LocationRepo) ownerOf(ctx context.Context, id uint64) (uint64, error) {
    var owner uint64
    err := r.db.QueryRowContext(ctx, `SELECT vendor_id FROM locations WHERE id = ?`, id).Scan(&owner)
    if errors.Is(err, sql.ErrNoRows) {
        return 0, ErrLocationNotFound
    }
    return owner, err
}

// GetByID loads a single location regardless of moderation state.
func (r *LocationRepo) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
    const q = `SELECT id, vendor_id, name, address, description, price_per_hour, total_slots,
                      latitude, longitude, image_url, qr_code_url, status, created_at, updated_at
               FROM locations WHERE id = ? LIMIT 1`
    loc, err := scanLocation(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrLocationNotFound
    }
    return loc, err
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanLocation(row rowScanner) (*model.Location, error) {
    var loc model.Location
    var status string
    if err := row.Scan(
        &loc.ID, &loc.VendorID, &loc.Name, &loc.Address, &loc.Description,
        &loc.PricePerHour, &loc.TotalSlots, &loc.Latitude, &loc.Longitude,
        &loc.ImageURL, &loc.QRCodeURL, &status, &loc.CreatedAt, &loc.UpdatedAt,
    ); err != nil {
        return nil, err
    }
    st, ok := model.ParseLocationStatus(status)
    if !ok {
        return nil, errors.New("unknown location status in database: " + status)
    }
    loc.Status = st
    return &loc, nil
}

// ListByVendor returns the vendor's own locations in any moderation
// state, newest first.  Pending and rejected entries are visible here
// even though the public discovery query hides them.
func (r *LocationRepo) ListByVendor(ctx context.Context, vendorID uint64) ([]model.Location, error) {
    const q = `SELECT id, vendor_id, name, address, description, price_per_hour, total_slots,
                      latitude, longitude, image_url, qr_code_url, status, created_at, updated_at
               FROM locations WHERE vendor_id = ? ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, vendorID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Location, 0)
    for rows.Next() {
        loc, err := scanLocation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *loc)
    }
    return out, rows.Err()
}

// ApprovedLocation is a discovery row: a public location enriched with
// the number of slots free at the current instant.  AvailableSlots is a
// live-occupancy hint only; the admission check re-validates the caller's
// actual interval when a booking is created.
type ApprovedLocation struct {
    ID             uint64  `json:"id"`
    Name           string  `json:"name"`
    Address        string  `json:"address"`
    Description    string  `json:"description"`
    PricePerHour   float64 `json:"price_per_hour"`
    TotalSlots     uint32  `json:"total_slots"`
    Latitude       float64 `json:"latitude"`
    Longitude      float64 `json:"longitude"`
    ImageURL       *string `json:"image_url,omitempty"`
    AvailableSlots int32   `json:"available_slots"`
}

// SearchApproved returns approved locations for public discovery,
// optionally filtered by a name/address search term, newest first.  The
// subquery counts bookings active right now (pending or confirmed,
// interval containing the current instant) and subtracts them from the
// total capacity.
func (r *LocationRepo) SearchApproved(ctx context.Context, term string) ([]ApprovedLocation, error) {
    now := time.Now().UTC().Format("2006-01-02 15:04:05")
    q := `SELECT l.id, l.name, l.address, l.description, l.price_per_hour, l.total_slots,
                 l.latitude, l.longitude, l.image_url,
                 (l.total_slots - (
                     SELECT COUNT(*) FROM bookings b
                     WHERE b.location_id = l.id
                       AND b.status IN ('pending', 'confirmed')
                       AND b.start_time <= ? AND b.end_time > ?
                 )) AS available_slots
          FROM locations l
          WHERE l.status = 'approved'`
    args := []interface{}{now, now}
    if term != "" {
        q += ` AND (l.name LIKE ? OR l.address LIKE ?)`
        pat := "%" + term + "%"
        args = append(args, pat, pat)
    }
    q += ` ORDER BY l.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]ApprovedLocation, 0)
    for rows.Next() {
        var a ApprovedLocation
        if err := rows.Scan(
            &a.ID, &a.Name, &a.Address, &a.Description, &a.PricePerHour, &a.TotalSlots,
            &a.Latitude, &a.Longitude, &a.ImageURL, &a.AvailableSlots,
        ); err != nil {
            return nil, err
        }
        out = append(out, a)
    }
    return out, rows.Err()
}

// AdminLocation pairs a location with its vendor's display fields for
// the admin listing and the moderation queue.
type AdminLocation struct {
    model.Location
    VendorName  string `json:"vendor_name"`
    VendorEmail string `json:"vendor_email"`
}

// ListAll returns every location with vendor name, newest first.
// Admin-only; callers enforce the role before reaching here.
func (r *LocationRepo) ListAll(ctx context.Context) ([]AdminLocation, error) {
    const q = `SELECT l.id, l.vendor_id, l.name, l.address, l.description, l.price_per_hour,
                      l.total_slots, l.latitude, l.longitude, l.image_url, l.qr_code_url,
                      l.status, l.created_at, l.updated_at, u.name, u.email
               FROM locations l
               JOIN users u ON u.id = l.vendor_id
               ORDER BY l.created_at DESC`
    return r.listWithVendor(ctx, q)
}

// ListPending returns the moderation queue: pending locations oldest
// first so the longest-waiting submission is reviewed first.
func (r *LocationRepo) ListPending(ctx context.Context) ([]AdminLocation, error) {
    const q = `SELECT l.id, l.vendor_id, l.name, l.address, l.description, l.price_per_hour,
                      l.total_slots, l.latitude, l.longitude, l.image_url, l.qr_code_url,
                      l.status, l.created_at, l.updated_at, u.name, u.email
               FROM locations l
               JOIN users u ON u.id = l.vendor_id
               WHERE l.status = 'pending'
               ORDER BY l.created_at ASC`
    return r.listWithVendor(ctx, q)
}

func (r *LocationRepo) listWithVendor(ctx context.Context, q string) ([]AdminLocation, error) {
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]AdminLocation, 0)
    for rows.Next() {
        var a AdminLocation
        var status string
        if err := rows.Scan(
            &a.ID, &a.VendorID, &a.Name, &a.Address, &a.Description, &a.PricePerHour,
            &a.TotalSlots, &a.Latitude, &a.Longitude, &a.ImageURL, &a.QRCodeURL,
            &status, &a.CreatedAt, &a.UpdatedAt, &a.VendorName, &a.VendorEmail,
        ); err != nil {
            return nil, err
        }
        st, ok := model.ParseLocationStatus(status)
        if !ok {
            return nil, errors.New("unknown location status in database: " + status)
        }
        a.Status = st
        out = append(out, a)
    }
    return out, rows.Err()
}

// Moderate applies an admin decision to a pending location.  The target
// must be approved or rejected.  Repeating a decision that was already
// applied is a no-op success; attempting the opposite terminal decision
// returns ErrConflict.  The read and the update share one transaction so
// two concurrent moderators cannot race past the state check.
func (r *LocationRepo) Moderate(ctx context.Context, id uint64, target model.LocationStatus) error {
    if target != model.LocationApproved && target != model.LocationRejected {
        return ErrConflict
    }
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    var raw string
    err = tx.QueryRowContext(ctx, `SELECT status FROM locations WHERE id = ? FOR UPDATE`, id).Scan(&raw)
    if errors.Is(err, sql.ErrNoRows) {
        return ErrLocationNotFound
    }
    if err != nil {
        return err
    }
    current, ok := model.ParseLocationStatus(raw)
    if !ok {
        return errors.New("unknown location status in database: " + raw)
    }
    if !current.CanModerateTo(target) {
        return ErrConflict
    }
    if current != target {
        if _, err := tx.ExecContext(ctx, `UPDATE locations SET status = ? WHERE id = ?`, string(target), id); err != nil {
            return err
        }
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
