package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/parking-reservation/internal/handler"    // import the handlers that implement business logic
    "github.com/iliyamo/parking-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
    "github.com/iliyamo/parking-reservation/internal/model"      // closed role enum
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Route group under /v1/auth for operations that do not require an
    // existing session (register, login, refresh).
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Rotating refresh: the old refresh token is revoked and a new pair issued.
    g.POST("/refresh", a.Refresh)
    // Non-rotating variant: issue a new access token, keep the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout does not require JWT middleware; the handler accepts either a
    // bearer token (revoke all sessions) or a refresh_token body (revoke one).
    g.POST("/logout", a.Logout)

    // Routes that require a valid access token.  Any of the three roles may
    // call /v1/me; the middleware rejects missing or unknown roles.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole(model.RoleUser, model.RoleVendor, model.RoleAdmin))
    auth.GET("/me", a.Me)

    // Alias so clients can call either /v1/auth/logout or /v1/logout.
    e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated discovery endpoints.  The optional
// middleware (typically the Redis response cache) is applied only here so
// authenticated, per-user responses are never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
    // Browse approved parking locations, optionally filtered with ?q=term.
    e.GET("/v1/locations", p.Search, mw...)
}
