package service

import (
	"context"

	"github.com/MKhiriev/go-board-keeper/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error)
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, models.PublicUser, error)
	Logout(ctx context.Context, userID, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (models.Token, error)

	// ValidateAccessToken verifies the signature, issuer and expiry of an
	// access token and rejects blacklisted tokens.
	ValidateAccessToken(ctx context.Context, tokenString string) (models.Token, error)

	Me(ctx context.Context, userID string) (models.PublicUser, error)
	UpdatePassword(ctx context.Context, userID string, request models.UpdatePasswordRequest) error
}

type PostService interface {
	CreatePost(ctx context.Context, author string, request models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) (models.PostPage, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	UpdatePost(ctx context.Context, id, username string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id, username string) error
}

type CommentService interface {
	CreateComment(ctx context.Context, postID, author, content string) (models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateComment(ctx context.Context, id, username, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, id, username string) error
}

type ChatbotService interface {
	Chat(ctx context.Context, userID, message string) (models.ChatResponse, error)
	SuggestTitle(ctx context.Context, content string) (string, error)

	// AllowUser consumes one slot of the caller's fixed-window quota and
	// reports whether the request may proceed.
	AllowUser(ctx context.Context, userID string) (bool, error)

	// AllowDaily consumes one slot of the global daily quota and reports
	// whether the request may proceed.
	AllowDaily(ctx context.Context) (bool, error)
}

type NewsService interface {
	TopHeadlines(ctx context.Context, country, category string, pageSize int) (models.Headlines, error)
}
