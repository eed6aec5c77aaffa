package models

import "time"

// Role is the authorization role carried by every user account and every
// issued token.
type Role string

const (
	// RoleCustomer browses live listings and unlocks owner contacts.
	RoleCustomer Role = "CUSTOMER"

	// RolePromoter submits and edits its own listings.
	RolePromoter Role = "PROMOTER"

	// RoleAdmin moderates listings.
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RolePromoter, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Email is the globally unique login of the user.
	Email string `json:"email"`

	// Password carries the plain-text password on registration and login
	// requests only. It is never persisted or serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// Role is immutable after creation.
	Role Role `json:"role"`

	// Verified reports whether the account passed verification.
	Verified bool `json:"verified"`

	// Phone is the contact number in E.164 format (e.g. "+919876543210").
	Phone string `json:"phone"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthenticatedUser is the identity derived from a verified bearer token.
// It is the only source of caller identity inside the service layer.
type AuthenticatedUser struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	Email  string `json:"email,omitempty"`
}

// HasRole reports whether the authenticated user carries role.
func (a AuthenticatedUser) HasRole(role Role) bool {
	return a.Role == role
}

// RegisterRequest is the self-registration payload. ADMIN accounts cannot be
// created through it.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     Role   `json:"role" validate:"required,oneof=CUSTOMER PROMOTER ADMIN"`
	Phone    string `json:"phone" validate:"required,e164"`
	Name     string `json:"name" validate:"max=100"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
