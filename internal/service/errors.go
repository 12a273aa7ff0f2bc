package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every credential failure at login:
	// unknown email and wrong password produce the same error so that the
	// response does not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotResourceAuthor means the caller tried to modify a post or
	// comment written by someone else.
	ErrNotResourceAuthor = errors.New("caller is not the resource author")

	ErrRateLimitExceeded  = errors.New("rate limit exceeded")
	ErrDailyLimitExceeded = errors.New("daily request limit exceeded")

	// ErrChatbotFailure wraps upstream AI errors on the chat path.
	ErrChatbotFailure = errors.New("chatbot reply generation failed")
)
