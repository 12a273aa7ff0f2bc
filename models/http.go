package models

// Request bodies accepted by the HTTP layer. Validation rules live in
// internal/validators.

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the payload of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdatePasswordRequest is the payload of PATCH /auth/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreatePostRequest is the payload of POST /posts.
//
// The author field is accepted for wire compatibility with older clients but
// is always overwritten with the authenticated username at the API boundary.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// CreateCommentRequest is the payload of POST /comments/{postId}.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the payload of PATCH /comments/{id}.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// ChatRequest is the payload of POST /chatbot/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// SuggestTitleRequest is the payload of POST /chatbot/suggest-title.
type SuggestTitleRequest struct {
	Content string `json:"content"`
}
