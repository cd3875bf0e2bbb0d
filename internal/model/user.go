package model

import "time"

// User represents an application user record as stored in the `users`
// table. Every user created by this system is an administrator; the flag
// is kept as a column because it travels inside the session token claims.
// Handlers never serialize this struct directly — the password hash must
// not leave the repository/handler boundary, so responses are built from
// Summary projections instead.
type User struct {
	ID           string    // users.id (UUID)
	Email        string    // users.email (unique)
	PasswordHash string    // users.password_hash (bcrypt)
	IsAdmin      bool      // users.is_admin
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// UserSummary is the projection of a User that is safe to return to
// clients: everything except the password hash.
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the redacted projection of u.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin, CreatedAt: u.CreatedAt}
}
