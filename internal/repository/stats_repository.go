package repository

import (
    "context"
    "database/sql"
)

// Stats is the admin dashboard rollup.  Revenue sums total_price over
// confirmed bookings only: pending money is not income and cancelled
// bookings never were.
type Stats struct {
    TotalUsers       uint64  `json:"total_users"`
    TotalVendors     uint64  `json:"total_vendors"`
    ActiveLocations  uint64  `json:"active_locations"`
    PendingApprovals uint64  `json:"pending_approvals"`
    TotalBookings    uint64  `json:"total_bookings"`
    Revenue          float64 `json:"revenue"`
}

// StatsRepo computes read-only rollups over users, locations and
// bookings.  These reads are not part of the booking path and do not
// need to be strongly consistent with the latest write; plain
// read-committed queries are fine and take no locks.
type StatsRepo struct {
    db *sql.DB
}

// NewStatsRepo returns a new StatsRepo bound to the given database.
func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// GetStats runs the individual count/sum queries and assembles the
// dashboard payload.
func (r *StatsRepo) GetStats(ctx context.Context) (Stats, error) {
    var s Stats
    queries := []struct {
        q    string
        dest interface{}
    }{
        {`SELECT COUNT(*) FROM users WHERE role = 'user'`, &s.TotalUsers},
        {`SELECT COUNT(*) FROM users WHERE role = 'vendor'`, &s.TotalVendors},
        {`SELECT COUNT(*) FROM locations WHERE status = 'approved'`, &s.ActiveLocations},
        {`SELECT COUNT(*) FROM locations WHERE status = 'pending'`, &s.PendingApprovals},
        {`SELECT COUNT(*) FROM bookings`, &s.TotalBookings},
        {`SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = 'confirmed'`, &s.Revenue},
    }
    for _, it := range queries {
        if err := r.db.QueryRowContext(ctx, it.q).Scan(it.dest); err != nil {
            return Stats{}, err
        }
    }
    return s, nil
}
