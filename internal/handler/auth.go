package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // SQL database interactions
    "net/http"     // HTTP status codes and primitives
    "strings"      // string manipulation utilities
    "time"         // timeouts for DB calls

    "strconv" // string-to-int conversion

    "github.com/golang-jwt/jwt/v5" // JSON Web Token library for parsing access tokens
    "github.com/labstack/echo/v4"  // Echo framework for HTTP routing

    "github.com/iliyamo/parking-reservation/internal/config"     // app configuration
    "github.com/iliyamo/parking-reservation/internal/model"      // domain types
    "github.com/iliyamo/parking-reservation/internal/repository" // DB repositories
    "github.com/iliyamo/parking-reservation/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg    config.Config
    Users  *repository.UserRepo
    Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    Password string `json:"password"`
    Role     string `json:"role"` // user | vendor; admin is never self-assignable
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type refreshReq struct {
    RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type userPart struct {
    ID    uint64 `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
    Role  string `json:"role"`
}
type authResp struct {
    User    userPart  `json:"user"`
    Access  tokenPart `json:"access"`
    Refresh tokenPart `json:"refresh"`
}

// registerRole maps the requested role onto the closed enum.  Unknown
// or missing values fall back to user; admin cannot be claimed at
// registration no matter what the request says.
func registerRole(raw string) model.Role {
    role, ok := model.ParseRole(strings.ToLower(strings.TrimSpace(raw)))
    if !ok || role == model.RoleAdmin {
        return model.RoleUser
    }
    return role
}

// Register: create user and return tokens immediately.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Name == "" || req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
    }
    role := registerRole(req.Role)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, role, h.Cfg.BcryptCost)
    if err != nil {
        if err == repository.ErrEmailExists {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
    }
    if err := h.Tokens.StoreRefresh(ctx, uid, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
    }

    return c.JSON(http.StatusCreated, authResp{
        User:    userPart{ID: uid, Name: req.Name, Email: req.Email, Role: role.String()},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
    })
}

// Login: verify and return new pair.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !u.IsActive {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account disabled"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
    }
    if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:    userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role.String()},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
    })
}

// Refresh: validate by hash, revoke old, issue new.
func (h *AuthHandler) Refresh(c echo.Context) error {
    var req refreshReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
    }
    raw := strings.TrimSpace(req.RefreshToken)
    hash := utils.HashRefreshRaw(raw)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    userID, err := h.Tokens.ValidateRefresh(ctx, hash)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
    }
    _ = h.Tokens.RevokeByHash(ctx, hash)

    u, err := h.Users.GetByID(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    newRef, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
    }
    if err := h.Tokens.StoreRefresh(ctx, userID, utils.HashRefreshRaw(newRef.Raw), newRef.Exp); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
    }

    return c.JSON(http.StatusOK, authResp{
        User:    userPart{ID: userID, Name: u.Name, Email: u.Email, Role: u.Role.String()},
        Access:  tokenPart{Token: access.Token, Expires: access.Exp},
        Refresh: tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
    })
}

// RefreshAccess: validate a refresh token and return a new access token
// WITHOUT rotating the refresh token.  Useful for obtaining a fresh
// short-lived access token while reusing an existing refresh token.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
    var req refreshReq
    if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
    }
    raw := strings.TrimSpace(req.RefreshToken)
    hash := utils.HashRefreshRaw(raw)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    userID, err := h.Tokens.ValidateRefresh(ctx, hash)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
    }
    u, err := h.Users.GetByID(ctx, userID)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
    }
    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "access": tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Logout revokes refresh tokens.  Two modes: a valid bearer with no
// body revokes every session for that user; a refresh_token in the body
// revokes that single session.  Neither present is a bad request.
func (h *AuthHandler) Logout(c echo.Context) error {
    var uid uint64
    hasBearer := false
    authHeader := c.Request().Header.Get("Authorization")
    if strings.HasPrefix(authHeader, "Bearer ") {
        rawToken := strings.TrimPrefix(authHeader, "Bearer ")
        tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
            if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                return nil, echo.ErrUnauthorized
            }
            return []byte(h.Cfg.JWTSecret), nil
        })
        if err == nil && tok.Valid {
            if claims, ok := tok.Claims.(jwt.MapClaims); ok {
                switch subVal := claims["sub"].(type) {
                case float64:
                    uid = uint64(subVal)
                    hasBearer = true
                case string:
                    if parsed, err := strconv.ParseUint(subVal, 10, 64); err == nil {
                        uid = parsed
                        hasBearer = true
                    }
                }
            }
        }
    }

    var req refreshReq
    _ = c.Bind(&req)
    refreshToken := strings.TrimSpace(req.RefreshToken)

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if hasBearer && refreshToken == "" {
        if uid == 0 {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        }
        if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
        }
        return c.NoContent(http.StatusNoContent)
    }
    if refreshToken != "" {
        hash := utils.HashRefreshRaw(refreshToken)
        if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
        }
        if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
        }
        return c.NoContent(http.StatusNoContent)
    }
    return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide Authorization header or refresh_token"})
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "user_id": c.Get("user_id"),
        "role":    c.Get("role"),
    })
}
