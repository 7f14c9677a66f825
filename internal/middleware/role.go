package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/model"
)

// RequireRole returns a middleware that enforces that the authenticated
// account holds one of the given roles.  JWTAuth must run earlier in the
// chain; it stores a model.Role under CtxRole, so the check here is a
// typed set membership, never a string comparison against request data.
// Requests with a missing or disallowed role are rejected with 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get(CtxRole).(model.Role)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "forbidden"})
            }
            return next(c)
        }
    }
}
