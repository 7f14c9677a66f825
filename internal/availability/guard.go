package availability

import "sync"

// Guard serializes admission attempts per location.  The admission check
// and the insert that follows form a check-then-act sequence; two
// concurrent requests for the same location must never interleave between
// the check and the insert or the capacity invariant can be violated.
// Locking is keyed by location ID so contention on one location never
// delays bookings at another.  The database row lock taken inside the
// admission transaction covers multi-process deployments; the Guard keeps
// in-process attempts from ever queuing on the database lock.
type Guard struct {
    mu    sync.Mutex
    locks map[uint64]*entry
}

type entry struct {
    mu   sync.Mutex
    refs int
}

// NewGuard returns an empty Guard.
func NewGuard() *Guard {
    return &Guard{locks: make(map[uint64]*entry)}
}

// Lock acquires the mutex for the given location, creating it on first
// use.  It blocks until any other in-flight admission for the same
// location finishes.
func (g *Guard) Lock(locationID uint64) {
    g.mu.Lock()
    e, ok := g.locks[locationID]
    if !ok {
        e = &entry{}
        g.locks[locationID] = e
    }
    e.refs++
    g.mu.Unlock()
    e.mu.Lock()
}

// Unlock releases the mutex for the given location.  The per-location
// entry is removed once no goroutine holds or waits on it, so the map
// does not grow with the number of locations ever seen.
func (g *Guard) Unlock(locationID uint64) {
    g.mu.Lock()
    e, ok := g.locks[locationID]
    if !ok {
        g.mu.Unlock()
        panic("availability: unlock of unlocked location")
    }
    e.refs--
    if e.refs == 0 {
        delete(g.locks, locationID)
    }
    g.mu.Unlock()
    e.mu.Unlock()
}
