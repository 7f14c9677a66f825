package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/parking-reservation/internal/availability"
    "github.com/iliyamo/parking-reservation/internal/model"
)

// BookingRepo owns booking records and their lifecycle transitions.  The
// admission path (Create) is the one genuinely concurrency-sensitive
// operation in the system: the capacity check and the insert must form a
// single atomic unit per location.  Two layers provide that: an
// in-process per-location guard serializes attempts inside this process,
// and the transaction row-locks the location (SELECT ... FOR UPDATE) so
// concurrent processes queue on the same row.  The lock scope is always
// exactly one location; cancellations and confirmations touch a single
// booking row and take no location lock at all.
type BookingRepo struct {
    db    *sql.DB
    guard *availability.Guard
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo {
    return &BookingRepo{db: db, guard: availability.NewGuard()}
}

const dbTimeLayout = "2006-01-02 15:04:05"

// Create runs the admission check for the candidate interval and, when a
// slot remains free, persists a new pending booking in the same atomic
// unit.  Returned sentinel errors: ErrLocationNotFound,
// ErrLocationNotApproved and ErrNoCapacity.  The caller validates the
// interval before calling; a malformed interval is still rejected here
// with ErrNoCapacity as a last line of defense.
func (r *BookingRepo) Create(ctx context.Context, userID, locationID uint64, interval availability.Interval, totalPrice float64) (*model.Booking, error) {
    if !interval.Valid() {
        return nil, ErrNoCapacity
    }

    r.guard.Lock(locationID)
    defer r.guard.Unlock(locationID)

    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    // Lock the location row for the duration of the check-and-insert.
    var totalSlots uint32
    var rawStatus string
    err = tx.QueryRowContext(ctx,
        `SELECT total_slots, status FROM locations WHERE id = ? FOR UPDATE`,
        locationID,
    ).Scan(&totalSlots, &rawStatus)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrLocationNotFound
    }
    if err != nil {
        return nil, err
    }
    status, ok := model.ParseLocationStatus(rawStatus)
    if !ok {
        return nil, errors.New("unknown location status in database: " + rawStatus)
    }
    if status != model.LocationApproved {
        return nil, ErrLocationNotApproved
    }

    active, err := r.overlappingActiveTx(ctx, tx, locationID, interval)
    if err != nil {
        return nil, err
    }
    if availability.CapacityRemaining(totalSlots, active, interval) <= 0 {
        return nil, ErrNoCapacity
    }

    booking := &model.Booking{
        UserID:     userID,
        LocationID: locationID,
        StartTime:  interval.Start.UTC(),
        EndTime:    interval.End.UTC(),
        Status:     model.BookingPending,
        TotalPrice: totalPrice,
    }
    res, err := tx.ExecContext(ctx,
        `INSERT INTO bookings (user_id, location_id, start_time, end_time, status, total_price)
         VALUES (?, ?, ?, ?, 'pending', ?)`,
        userID, locationID,
        booking.StartTime.Format(dbTimeLayout), booking.EndTime.Format(dbTimeLayout),
        totalPrice,
    )
    if err != nil {
        return nil, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return nil, err
    }
    booking.ID = uint64(id)
    // Query back the row to populate database-generated timestamps.
    err = tx.QueryRowContext(ctx,
        `SELECT created_at, updated_at FROM bookings WHERE id = ?`, booking.ID,
    ).Scan(&booking.CreatedAt, &booking.UpdatedAt)
    if err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return booking, nil
}

// overlappingActiveTx loads the intervals of active bookings at the
// location that overlap the candidate.  Half-open semantics: a booking
// ending exactly when the candidate starts does not match
// (start_time < end AND end_time > start).
func (r *BookingRepo) overlappingActiveTx(ctx context.Context, tx *sql.Tx, locationID uint64, candidate availability.Interval) ([]availability.Interval, error) {
    const q = `SELECT start_time, end_time FROM bookings
               WHERE location_id = ?
                 AND status IN ('pending', 'confirmed')
                 AND start_time < ? AND end_time > ?`
    rows, err := tx.QueryContext(ctx, q, locationID,
        candidate.End.UTC().Format(dbTimeLayout), candidate.Start.UTC().Format(dbTimeLayout))
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []availability.Interval
    for rows.Next() {
        var iv availability.Interval
        if err := rows.Scan(&iv.Start, &iv.End); err != nil {
            return nil, err
        }
        out = append(out, iv)
    }
    return out, rows.Err()
}

// Cancel sets a booking owned by userID to cancelled, immediately
// freeing its slot for future admission checks.  Cancelling an already
// cancelled booking is a no-op success.  The read and the update share
// one transaction so a concurrent confirm cannot slip between them.
func (r *BookingRepo) Cancel(ctx context.Context, bookingID, userID uint64) error {
    _, err := r.transition(ctx, bookingID, userID, model.BookingCancelled, nil)
    return err
}

// Confirm marks a pending booking as confirmed once payment is
// acknowledged, storing proofRef as the payment reference.  Confirmed
// bookings keep counting against capacity, so no admission re-check is
// needed.  Confirming an already confirmed booking is a no-op success
// with changed=false, so retries produce no follow-on effects;
// confirming a cancelled one returns ErrConflict.
func (r *BookingRepo) Confirm(ctx context.Context, bookingID, userID uint64, proofRef string) (bool, error) {
    return r.transition(ctx, bookingID, userID, model.BookingConfirmed, &proofRef)
}

// planTransition validates a lifecycle transition and reports whether it
// would change state.  Re-applying the state a booking is already in is
// a harmless no-op; a forbidden transition is ErrConflict.
func planTransition(current, target model.BookingStatus) (bool, error) {
    if !current.CanTransitionTo(target) {
        return false, ErrConflict
    }
    return current != target, nil
}

func (r *BookingRepo) transition(ctx context.Context, bookingID, userID uint64, target model.BookingStatus, proofRef *string) (bool, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return false, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    var owner uint64
    var rawStatus string
    err = tx.QueryRowContext(ctx,
        `SELECT user_id, status FROM bookings WHERE id = ? FOR UPDATE`, bookingID,
    ).Scan(&owner, &rawStatus)
    if errors.Is(err, sql.ErrNoRows) {
        return false, ErrBookingNotFound
    }
    if err != nil {
        return false, err
    }
    if owner != userID {
        return false, ErrForbidden
    }
    current, ok := model.ParseBookingStatus(rawStatus)
    if !ok {
        return false, errors.New("unknown booking status in database: " + rawStatus)
    }
    changed, err := planTransition(current, target)
    if err != nil {
        return false, err
    }
    if changed {
        if proofRef != nil {
            _, err = tx.ExecContext(ctx,
                `UPDATE bookings SET status = ?, payment_proof = ? WHERE id = ?`,
                string(target), *proofRef, bookingID)
        } else {
            _, err = tx.ExecContext(ctx,
                `UPDATE bookings SET status = ? WHERE id = ?`, string(target), bookingID)
        }
        if err != nil {
            return false, err
        }
    }
    if err := tx.Commit(); err != nil {
        return false, err
    }
    committed = true
    return changed, nil
}

// GetByID loads a single booking row.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID uint64) (*model.Booking, error) {
    const q = `SELECT id, user_id, location_id, start_time, end_time, status, total_price,
                      payment_proof, created_at, updated_at
               FROM bookings WHERE id = ? LIMIT 1`
    var b model.Booking
    var rawStatus string
    err := r.db.QueryRowContext(ctx, q, bookingID).Scan(
        &b.ID, &b.UserID, &b.LocationID, &b.StartTime, &b.EndTime, &rawStatus,
        &b.TotalPrice, &b.PaymentProof, &b.CreatedAt, &b.UpdatedAt,
    )
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrBookingNotFound
    }
    if err != nil {
        return nil, err
    }
    status, ok := model.ParseBookingStatus(rawStatus)
    if !ok {
        return nil, errors.New("unknown booking status in database: " + rawStatus)
    }
    b.Status = status
    return &b, nil
}

// UserBookingDetail is a booking enriched with location display fields
// for the "my bookings" listing.
type UserBookingDetail struct {
    ID           uint64  `json:"id"`
    LocationID   uint64  `json:"location_id"`
    LocationName string  `json:"location_name"`
    Address      string  `json:"address"`
    Latitude     float64 `json:"latitude"`
    Longitude    float64 `json:"longitude"`
    StartTime    string  `json:"start_time"`
    EndTime      string  `json:"end_time"`
    Status       string  `json:"status"`
    TotalPrice   float64 `json:"total_price"`
    CreatedAt    string  `json:"created_at"`
}

// ListByUser returns all bookings created by the user, newest first,
// joined with location display fields.  No capacity semantics here.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]UserBookingDetail, error) {
    const q = `SELECT b.id, b.location_id, l.name, l.address, l.latitude, l.longitude,
                      b.start_time, b.end_time, b.status, b.total_price, b.created_at
               FROM bookings b
               JOIN locations l ON l.id = b.location_id
               WHERE b.user_id = ?
               ORDER BY b.created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]UserBookingDetail, 0)
    for rows.Next() {
        var d UserBookingDetail
        var start, end, created time.Time
        if err := rows.Scan(
            &d.ID, &d.LocationID, &d.LocationName, &d.Address, &d.Latitude, &d.Longitude,
            &start, &end, &d.Status, &d.TotalPrice, &created,
        ); err != nil {
            return nil, err
        }
        d.StartTime = start.UTC().Format(time.RFC3339)
        d.EndTime = end.UTC().Format(time.RFC3339)
        d.CreatedAt = created.UTC().Format(time.RFC3339)
        out = append(out, d)
    }
    return out, rows.Err()
}

// VendorBookingDetail is a booking at one of the vendor's locations,
// enriched with the booking user's display fields.
type VendorBookingDetail struct {
    ID           uint64  `json:"id"`
    LocationID   uint64  `json:"location_id"`
    LocationName string  `json:"location_name"`
    UserName     string  `json:"user_name"`
    UserEmail    string  `json:"user_email"`
    StartTime    string  `json:"start_time"`
    EndTime      string  `json:"end_time"`
    Status       string  `json:"status"`
    TotalPrice   float64 `json:"total_price"`
    CreatedAt    string  `json:"created_at"`
}

// ListByVendor returns bookings across all of the vendor's locations,
// newest first.
func (r *BookingRepo) ListByVendor(ctx context.Context, vendorID uint64) ([]VendorBookingDetail, error) {
    const q = `SELECT b.id, b.location_id, l.name, u.name, u.email,
                      b.start_time, b.end_time, b.status, b.total_price, b.created_at
               FROM bookings b
               JOIN locations l ON l.id = b.location_id
               JOIN users u ON u.id = b.user_id
               WHERE l.vendor_id = ?
               ORDER BY b.created_at DESC`
    return r.listVendorDetails(ctx, q, vendorID)
}

// ListAll returns every booking with location and user display fields,
// newest first.  Admin-only; left joins keep bookings visible even when
// the location or user row has been removed.
func (r *BookingRepo) ListAll(ctx context.Context) ([]VendorBookingDetail, error) {
    const q = `SELECT b.id, b.location_id, COALESCE(l.name, ''), COALESCE(u.name, ''), COALESCE(u.email, ''),
                      b.start_time, b.end_time, b.status, b.total_price, b.created_at
               FROM bookings b
               LEFT JOIN locations l ON l.id = b.location_id
               LEFT JOIN users u ON u.id = b.user_id
               ORDER BY b.created_at DESC`
    return r.listVendorDetails(ctx, q)
}

func (r *BookingRepo) listVendorDetails(ctx context.Context, q string, args ...interface{}) ([]VendorBookingDetail, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]VendorBookingDetail, 0)
    for rows.Next() {
        var d VendorBookingDetail
        var start, end, created time.Time
        if err := rows.Scan(
            &d.ID, &d.LocationID, &d.LocationName, &d.UserName, &d.UserEmail,
            &start, &end, &d.Status, &d.TotalPrice, &created,
        ); err != nil {
            return nil, err
        }
        d.StartTime = start.UTC().Format(time.RFC3339)
        d.EndTime = end.UTC().Format(time.RFC3339)
        d.CreatedAt = created.UTC().Format(time.RFC3339)
        out = append(out, d)
    }
    return out, rows.Err()
}
