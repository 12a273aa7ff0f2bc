package config

import "errors"

// Validation errors returned by StructuredConfig.validate.
var (
	// ErrNoAccessSignKey is returned when no access-token signing key was
	// provided by any configuration source.
	ErrNoAccessSignKey = errors.New("no access token sign key provided")

	// ErrNoRefreshSignKey is returned when no refresh-token signing key was
	// provided by any configuration source.
	ErrNoRefreshSignKey = errors.New("no refresh token sign key provided")

	// ErrSameSignKeys is returned when the access and refresh signing keys
	// are identical; a refresh token must never verify as an access token.
	ErrSameSignKeys = errors.New("access and refresh sign keys must differ")
)
