package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The engine treats users purely as an identity/role source;
// handlers define separate response types with JSON tags where needed.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique, normalized email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – account role (user, vendor or admin).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         Role      // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
