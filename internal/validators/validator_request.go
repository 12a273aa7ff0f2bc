package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-board-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldEmail        = "email"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldNewPassword  = "new_password"
	FieldRefreshToken = "refresh_token"
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldMessage      = "message"
)

const (
	minUsernameLength = 2
	minPasswordLength = 6
	maxMessageLength  = 500
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(ctx, value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(ctx, *value, fields...)

	case models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, value, fields...)
	case *models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, *value, fields...)

	case models.CreatePostRequest:
		return v.validateCreatePostRequest(ctx, value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePostRequest(ctx, *value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(ctx, value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(ctx, *value, fields...)

	case models.CreateCommentRequest:
		return v.validateCommentContent(ctx, value.Content)
	case *models.CreateCommentRequest:
		return v.validateCommentContent(ctx, value.Content)

	case models.UpdateCommentRequest:
		return v.validateCommentContent(ctx, value.Content)
	case *models.UpdateCommentRequest:
		return v.validateCommentContent(ctx, value.Content)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	case models.SuggestTitleRequest:
		if strings.TrimSpace(value.Content) == "" {
			return ErrEmptyContent
		}
		return nil
	case *models.SuggestTitleRequest:
		if strings.TrimSpace(value.Content) == "" {
			return ErrEmptyContent
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(request.Username)) < minUsernameLength {
				return ErrShortUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < minPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRefreshRequest(ctx context.Context, request models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(request.RefreshToken) == "" {
				return ErrEmptyRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdatePasswordRequest(ctx context.Context, request models.UpdatePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.CurrentPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if utf8.RuneCountInString(request.NewPassword) < minPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreatePostRequest(ctx context.Context, request models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(request.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate rejects fields that are present but blank; absent fields
// mean "leave unchanged" and are always valid.
func (v *RequestValidator) validatePostUpdate(ctx context.Context, update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCommentContent(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func (v *RequestValidator) validateChatRequest(ctx context.Context, request models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(request.Message) == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(request.Message) > maxMessageLength {
				return ErrMessageTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
