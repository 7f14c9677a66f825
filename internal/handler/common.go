package handler // handler defines http handlers

import (
    "errors"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/middleware"
)

// getUserID extracts the authenticated user ID that JWTAuth stored in
// the context.  Every ledger and moderation operation receives identity
// as an explicit parameter from here on; nothing below the handlers
// reads ambient request state.
func getUserID(c echo.Context) (uint64, error) {
    if uid, ok := c.Get(middleware.CtxUserID).(uint64); ok && uid != 0 {
        return uid, nil
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid id")
    }
    return id, nil
}

// timeLayouts accepted for booking timestamps.  Clients send either
// RFC3339 or the HTML datetime-local shape (with or without seconds,
// with T or a space).  Parsed values are interpreted as wall-clock UTC.
var timeLayouts = []string{
    time.RFC3339,
    "2006-01-02T15:04:05",
    "2006-01-02 15:04:05",
    "2006-01-02T15:04",
    "2006-01-02 15:04",
}

// parseTimestamp parses a request timestamp against the accepted
// layouts and normalizes it to UTC.
func parseTimestamp(s string) (time.Time, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range timeLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t.UTC(), true
        }
    }
    return time.Time{}, false
}
