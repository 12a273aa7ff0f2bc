package store

import (
	"context"

	"github.com/MKhiriev/go-board-keeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int64, error)
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
	SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]models.Post, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	FindCommentByID(ctx context.Context, id string) (models.Comment, error)
	UpdateComment(ctx context.Context, id string, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	DeleteCommentsByPostID(ctx context.Context, postID string) (int64, error)
}
