package handler

import (
    "testing"
    "time"

    "github.com/iliyamo/parking-reservation/internal/model"
)

func TestCreateBookingReqValidate(t *testing.T) {
    base := createBookingReq{
        LocationID: 7,
        StartTime:  "2026-09-01T10:00:00Z",
        EndTime:    "2026-09-01T12:00:00Z",
        TotalPrice: 10,
    }

    cases := []struct {
        name    string
        mutate  func(r *createBookingReq)
        wantMsg string
    }{
        {"valid", func(r *createBookingReq) {}, ""},
        {"missing location", func(r *createBookingReq) { r.LocationID = 0 }, "Parking location is required"},
        {"missing start", func(r *createBookingReq) { r.StartTime = "" }, "Start time is required"},
        {"missing end", func(r *createBookingReq) { r.EndTime = "" }, "End time is required"},
        {"garbage start", func(r *createBookingReq) { r.StartTime = "not a time" }, "Invalid start time"},
        {"garbage end", func(r *createBookingReq) { r.EndTime = "soon" }, "Invalid end time"},
        {"end before start", func(r *createBookingReq) {
            r.StartTime, r.EndTime = r.EndTime, r.StartTime
        }, "End time must be after start time"},
        {"zero length", func(r *createBookingReq) { r.EndTime = r.StartTime }, "End time must be after start time"},
        {"negative price", func(r *createBookingReq) { r.TotalPrice = -1 }, "Total price cannot be negative"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            req := base
            tc.mutate(&req)
            iv, msg := req.validate()
            if msg != tc.wantMsg {
                t.Fatalf("validate() msg = %q, want %q", msg, tc.wantMsg)
            }
            if msg == "" && !iv.Valid() {
                t.Fatalf("validate() returned invalid interval %v for a valid request", iv)
            }
        })
    }
}

func TestCreateBookingReqAcceptsDatetimeLocal(t *testing.T) {
    req := createBookingReq{
        LocationID: 1,
        StartTime:  "2026-09-01T10:00",
        EndTime:    "2026-09-01 12:00:00",
        TotalPrice: 4,
    }
    iv, msg := req.validate()
    if msg != "" {
        t.Fatalf("validate() = %q, want accepted", msg)
    }
    want := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
    if !iv.Start.Equal(want) {
        t.Fatalf("parsed start = %v, want %v", iv.Start, want)
    }
}

func TestLocationReqValidate(t *testing.T) {
    base := locationReq{
        Name:         "Central Lot",
        Address:      "1 Main St",
        TotalSlots:   20,
        PricePerHour: 2.5,
    }

    cases := []struct {
        name    string
        mutate  func(r *locationReq)
        wantMsg string
    }{
        {"valid", func(r *locationReq) {}, ""},
        {"missing name", func(r *locationReq) { r.Name = "  " }, "Name is required"},
        {"missing address", func(r *locationReq) { r.Address = "" }, "Address is required"},
        {"zero slots", func(r *locationReq) { r.TotalSlots = 0 }, "Total slots must be at least 1"},
        {"zero price", func(r *locationReq) { r.PricePerHour = 0 }, "Price per hour is required"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            req := base
            tc.mutate(&req)
            if msg := req.validate(); msg != tc.wantMsg {
                t.Fatalf("validate() = %q, want %q", msg, tc.wantMsg)
            }
        })
    }
}

func TestLocationReqToModelTrimsAndPointers(t *testing.T) {
    req := locationReq{
        Name:         "  Central Lot ",
        Address:      " 1 Main St ",
        TotalSlots:   5,
        PricePerHour: 3,
        ImageURL:     "https://cdn.example/lot.jpg",
    }
    loc := req.toModel()
    if loc.Name != "Central Lot" || loc.Address != "1 Main St" {
        t.Fatalf("toModel did not trim: %q / %q", loc.Name, loc.Address)
    }
    if loc.ImageURL == nil || *loc.ImageURL != req.ImageURL {
        t.Fatalf("image url not carried: %v", loc.ImageURL)
    }
    if loc.QRCodeURL != nil {
        t.Fatalf("empty qr code url should stay nil, got %v", *loc.QRCodeURL)
    }
}

func TestRegisterRole(t *testing.T) {
    cases := []struct {
        in   string
        want model.Role
    }{
        {"user", model.RoleUser},
        {"vendor", model.RoleVendor},
        {"VENDOR", model.RoleVendor},
        {" vendor ", model.RoleVendor},
        {"admin", model.RoleUser}, // admin is never self-assignable
        {"owner", model.RoleUser},
        {"", model.RoleUser},
    }
    for _, tc := range cases {
        if got := registerRole(tc.in); got != tc.want {
            t.Errorf("registerRole(%q) = %s, want %s", tc.in, got, tc.want)
        }
    }
}

func TestParseTimestamp(t *testing.T) {
    if _, ok := parseTimestamp(""); ok {
        t.Fatal("empty string should not parse")
    }
    got, ok := parseTimestamp("2026-09-01T10:00:00+02:00")
    if !ok {
        t.Fatal("RFC3339 with offset should parse")
    }
    want := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("parseTimestamp normalized to %v, want %v", got, want)
    }
}
