package models

import "time"

// User represents a marketplace account. A user can act as a seller of
// products and keeps a personal list of favorite products.
// The password hash must never leave the server.
type User struct {
	// ID is the unique identifier assigned by the storage layer.
	ID int64 `json:"id"`

	// Username is the globally unique public name of the user.
	Username string `json:"username"`

	// Email is the globally unique login identifier, stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the public part of the user that is embedded into
// tokens and returned to clients.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated principal of a request.
// It is decoded from a bearer token and carried in the request context.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
