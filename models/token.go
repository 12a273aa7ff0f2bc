package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by both access and refresh tokens.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, iss per RFC 7519) with the
// email and username of the subject user so that authenticated handlers can
// resolve the caller's identity without a database round trip.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a parsed or freshly issued JWT with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID is a cached copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims provides access to the claim set carried by the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject user identifier (Mongo ObjectID hex) extracted
	// from the "sub" claim. Internal server-side cache.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair bundles the short-lived access token and the long-lived refresh
// token issued together at login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
