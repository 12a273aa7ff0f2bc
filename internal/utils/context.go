// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
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

// Context keys populated by the authentication middleware after a bearer
// token has been validated. Downstream handlers read the caller's identity
// through the typed getters below instead of re-parsing the token.
var (
	// UserIDCtxKey stores the authenticated user's id (ObjectID hex).
	UserIDCtxKey = contextKey("userID")

	// UsernameCtxKey stores the authenticated user's username.
	UsernameCtxKey = contextKey("username")

	// EmailCtxKey stores the authenticated user's email.
	EmailCtxKey = contextKey("email")

	// AccessTokenCtxKey stores the raw bearer token of the request,
	// needed by logout to blacklist the presented token.
	AccessTokenCtxKey = contextKey("accessToken")
)

// GetUserIDFromContext retrieves the authenticated user id from the context.
//
// Returns the id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// GetEmailFromContext retrieves the authenticated email from the context.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}

// GetAccessTokenFromContext retrieves the raw bearer token of the request.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok
}
