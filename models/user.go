package models

import "time"

// User is a registered account of the clinic application.
// PasswordHash is a bcrypt digest and is never serialised to clients.
type User struct {
	// ID is generated by the database on insert.
	ID string `json:"id"`

	// Login is unique across all users and stored trimmed.
	Login string `json:"login"`

	// Email is unique across all users and stored trimmed and lowercased.
	Email string `json:"email"`

	// PasswordHash holds the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt   time.Time  `json:"created_at,omitzero"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegistrationRequest is the body accepted by the registration endpoint.
type RegistrationRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser is the public view of a freshly created user.
type RegisteredUser struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

// LoginRequest is the body accepted by the login-timestamp endpoint.
type LoginRequest struct {
	Login string `json:"login"`
}

// LoginResult reports the outcome of a login-timestamp update.
// Updated is zero when no user matched the login.
type LoginResult struct {
	Success bool   `json:"success"`
	Login   string `json:"login"`
	Updated int64  `json:"updated"`
}

// Identity is the locally cached user identity of the client application.
type Identity struct {
	UserID       string `json:"user_id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	Chiropractor string `json:"chiropractor"`
}

// IsEmpty reports whether no identity is cached.
func (i Identity) IsEmpty() bool {
	return i.UserID == "" && i.Login == "" && i.Email == ""
}
