package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"
    "time"

    "github.com/iliyamo/parking-reservation/internal/model"
    "github.com/iliyamo/parking-reservation/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, role model.Role, cost int) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return 0, err
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)",
        name, email, hash, string(role))
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return 0, ErrEmailExists
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    return r.scanOne(r.DB.QueryRowContext(ctx,
        "SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
        email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
    return r.scanOne(r.DB.QueryRowContext(ctx,
        "SELECT id,name,email,password_hash,role,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
        id))
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
    var u model.User
    var rawRole string
    err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &rawRole, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    if err != nil {
        return u, err
    }
    role, ok := model.ParseRole(rawRole)
    if !ok {
        return u, errors.New("unknown role in database: " + rawRole)
    }
    u.Role = role
    return u, nil
}

// UserSummary is the admin listing row; the password hash never leaves
// the repository.
type UserSummary struct {
    ID        uint64    `json:"id"`
    Name      string    `json:"name"`
    Email     string    `json:"email"`
    Role      string    `json:"role"`
    IsActive  bool      `json:"is_active"`
    CreatedAt time.Time `json:"created_at"`
}

// ListAll returns every user without credentials, newest first.
func (r *UserRepo) ListAll(ctx context.Context) ([]UserSummary, error) {
    rows, err := r.DB.QueryContext(ctx,
        "SELECT id,name,email,role,is_active,created_at FROM users ORDER BY created_at DESC")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]UserSummary, 0)
    for rows.Next() {
        var u UserSummary
        if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, u)
    }
    return out, rows.Err()
}
