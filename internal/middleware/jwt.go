package middleware // middleware provides shared request processing for handlers

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/parking-reservation/internal/model"
)

// Context keys set by JWTAuth and consumed by RequireRole and handlers.
const (
    CtxUserID = "user_id"
    CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the authenticated identity into the request context:
// CtxUserID as uint64 and CtxRole as model.Role.  Tokens carrying a role
// outside the closed enumeration are rejected outright; downstream code
// never sees a free-form role string.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with HS256 only; tokens signed any other way are
            // rejected by the key callback.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid token"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid claims"})
            }

            uid, ok := subjectID(claims["sub"])
            if !ok || uid == 0 {
                return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid subject"})
            }
            roleStr, _ := claims["role"].(string)
            role, ok := model.ParseRole(roleStr)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "unknown role"})
            }

            c.Set(CtxUserID, uid)
            c.Set(CtxRole, role)
            return next(c)
        }
    }
}

// subjectID converts the `sub` claim to uint64.  JWT numbers decode as
// float64; string subjects are parsed for compatibility.
func subjectID(v interface{}) (uint64, bool) {
    switch t := v.(type) {
    case float64:
        return uint64(t), true
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, true
        }
    }
    return 0, false
}
