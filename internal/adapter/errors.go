package adapter

import "errors"

var (
	// ErrNotConfigured means the client has no API key and cannot make
	// upstream calls.
	ErrNotConfigured = errors.New("adapter not configured")

	// ErrUpstream means the upstream API returned a non-success response or
	// an unusable payload.
	ErrUpstream = errors.New("upstream api error")
)
