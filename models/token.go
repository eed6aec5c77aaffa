package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the server.
//
// The subject ("sub") carries the user ID; Role and Email are private
// claims. Claims are trusted only after signature verification.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the authorization role of the subject.
	Role Role `json:"role"`

	// Email is the optional login of the subject.
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// User is the identity encoded in the token claims.
	User AuthenticatedUser `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
