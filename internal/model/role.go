package model

// Role is the closed set of account roles understood by the application.
// Authorization decisions switch exhaustively over these values; free-form
// string comparison of roles is not allowed anywhere else in the codebase.
type Role string

const (
    RoleUser   Role = "user"   // regular customer who books parking slots
    RoleVendor Role = "vendor" // owns parking locations
    RoleAdmin  Role = "admin"  // moderates locations and views platform stats
)

// ParseRole maps a raw string onto a Role.  The boolean result is false
// for any value outside the closed set, including the empty string.
// Callers must handle the failure case explicitly instead of defaulting.
func ParseRole(s string) (Role, bool) {
    switch Role(s) {
    case RoleUser:
        return RoleUser, true
    case RoleVendor:
        return RoleVendor, true
    case RoleAdmin:
        return RoleAdmin, true
    }
    return "", false
}

// String returns the wire representation of the role.
func (r Role) String() string { return string(r) }
