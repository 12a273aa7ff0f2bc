package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email address")
	ErrShortUsername     = errors.New("username must be at least 2 characters")
	ErrShortPassword     = errors.New("password must be at least 6 characters")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyRefreshToken = errors.New("refresh token is required")

	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")

	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message must be at most 500 characters")
)
