// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP request and response helpers, HTTP client initialization, JWT token
// generation and validation, phone masking and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthenticatedUserCtxKey is the key under which the auth middleware stores
// the verified caller identity.
var AuthenticatedUserCtxKey = contextKey("authenticatedUser")

// WithAuthenticatedUser returns a copy of ctx carrying user.
func WithAuthenticatedUser(ctx context.Context, user models.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, AuthenticatedUserCtxKey, user)
}

// GetAuthenticatedUserFromContext retrieves the verified caller identity.
//
// Returns ok == false when the request is anonymous or the stored value has
// an unexpected type.
//
// Example usage:
//
//	user, ok := utils.GetAuthenticatedUserFromContext(ctx)
//	if !ok {
//	    // anonymous caller
//	}
func GetAuthenticatedUserFromContext(ctx context.Context) (models.AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthenticatedUserCtxKey).(models.AuthenticatedUser)
	if !ok || user.UserID == "" {
		return models.AuthenticatedUser{}, false
	}
	return user, true
}
