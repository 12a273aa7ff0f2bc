package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidator_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{
			name:    "valid",
			request: models.RegisterRequest{Email: "gopher@example.com", Username: "gopher", Password: "secret1"},
		},
		{
			name:    "invalid email",
			request: models.RegisterRequest{Email: "not-an-email", Username: "gopher", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with display name",
			request: models.RegisterRequest{Email: "Gopher <gopher@example.com>", Username: "gopher", Password: "secret1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "username too short",
			request: models.RegisterRequest{Email: "gopher@example.com", Username: "g", Password: "secret1"},
			wantErr: ErrShortUsername,
		},
		{
			name:    "whitespace username",
			request: models.RegisterRequest{Email: "gopher@example.com", Username: "   ", Password: "secret1"},
			wantErr: ErrShortUsername,
		},
		{
			name:    "password too short",
			request: models.RegisterRequest{Email: "gopher@example.com", Username: "gopher", Password: "12345"},
			wantErr: ErrShortPassword,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequestValidator_RegisterRequest_FieldScoping(t *testing.T) {
	v := NewRequestValidator()

	// only the email field is checked, the short password passes
	request := models.RegisterRequest{Email: "gopher@example.com", Username: "g", Password: "123"}
	assert.NoError(t, v.Validate(context.Background(), request, FieldEmail))

	assert.ErrorIs(t, v.Validate(context.Background(), request, FieldPassword), ErrShortPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), request, "no-such-field"), ErrUnknownField)
}

func TestRequestValidator_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "gopher@example.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "oops", Password: "x"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "gopher@example.com"}), ErrEmptyPassword)
}

func TestRequestValidator_RefreshRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.RefreshRequest{RefreshToken: "jwt"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.RefreshRequest{RefreshToken: "  "}), ErrEmptyRefreshToken)
}

func TestRequestValidator_UpdatePasswordRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(),
		models.UpdatePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}))
	assert.ErrorIs(t, v.Validate(context.Background(),
		models.UpdatePasswordRequest{NewPassword: "secret2"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(context.Background(),
		models.UpdatePasswordRequest{CurrentPassword: "secret1", NewPassword: "short"}), ErrShortPassword)
}

func TestRequestValidator_CreatePostRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CreatePostRequest{Title: "First", Content: "Hello"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.CreatePostRequest{Content: "Hello"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(context.Background(), models.CreatePostRequest{Title: "First", Content: " "}), ErrEmptyContent)
}

func TestRequestValidator_PostUpdate(t *testing.T) {
	v := NewRequestValidator()

	title := "Renamed"
	blank := "  "

	// absent fields mean "leave unchanged"
	assert.NoError(t, v.Validate(context.Background(), models.PostUpdate{}))
	assert.NoError(t, v.Validate(context.Background(), models.PostUpdate{Title: &title}))

	assert.ErrorIs(t, v.Validate(context.Background(), models.PostUpdate{Title: &blank}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PostUpdate{Content: &blank}), ErrEmptyContent)
}

func TestRequestValidator_CommentRequests(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CreateCommentRequest{Content: "nice"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.CreateCommentRequest{}), ErrEmptyContent)
	assert.ErrorIs(t, v.Validate(context.Background(), models.UpdateCommentRequest{Content: " "}), ErrEmptyContent)
}

func TestRequestValidator_ChatRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ChatRequest{Message: "hello"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ChatRequest{Message: "   "}), ErrEmptyMessage)

	atLimit := models.ChatRequest{Message: strings.Repeat("a", maxMessageLength)}
	assert.NoError(t, v.Validate(context.Background(), atLimit))

	overLimit := models.ChatRequest{Message: strings.Repeat("a", maxMessageLength+1)}
	assert.ErrorIs(t, v.Validate(context.Background(), overLimit), ErrMessageTooLong)
}

func TestRequestValidator_SuggestTitleRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.SuggestTitleRequest{Content: "draft"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.SuggestTitleRequest{}), ErrEmptyContent)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), struct{ X int }{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRequestValidator_PointerRequests(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(),
		&models.RegisterRequest{Email: "gopher@example.com", Username: "gopher", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.ChatRequest{}), ErrEmptyMessage)
}
