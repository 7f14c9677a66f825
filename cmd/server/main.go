package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/parking-reservation/internal/config"     // Internal config loader
    "github.com/iliyamo/parking-reservation/internal/database"     // MySQL connection helper
    "github.com/iliyamo/parking-reservation/internal/handler"      // HTTP handlers
    "github.com/iliyamo/parking-reservation/internal/middleware"   // rate limiting and caching
    "github.com/iliyamo/parking-reservation/internal/queue"        // booking.confirmed consumer
    "github.com/iliyamo/parking-reservation/internal/repository"   // DB repositories
    "github.com/iliyamo/parking-reservation/internal/router"       // Internal router setup
)

func main() {
    // Load .env if present; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer db.Close()

    // Redis is optional; a nil client disables caching and rate limiting.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; cache and rate limiting disabled")
    }

    // Repositories.  The booking repo owns the admission guard so the
    // capacity check and the insert serialize per location.
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    locations := repository.NewLocationRepo(db)
    bookings := repository.NewBookingRepo(db)
    stats := repository.NewStatsRepo(db)

    // Handlers.
    authH := handler.NewAuthHandler(cfg, users, tokens)
    publicH := handler.NewPublicHandler(locations)
    bookingH := handler.NewBookingHandler(bookings, locations)
    vendorH := handler.NewVendorHandler(locations, bookings)
    adminH := handler.NewAdminHandler(locations, bookings, users, stats)

    e := echo.New() // Create Echo instance

    // Token-bucket rate limiting applies to every route; the response cache
    // only wraps the public discovery endpoint.
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    router.RegisterRoutes(e) // Health check
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH, cacheMW)
    router.RegisterUser(e, bookingH, cfg.JWTSecret)
    router.RegisterVendor(e, vendorH, cfg.JWTSecret)
    router.RegisterAdmin(e, adminH, cfg.JWTSecret)

    // Consume booking.confirmed events in the background; the consumer
    // reconnects on broker failures and never takes the server down.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
