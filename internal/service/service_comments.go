package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// commentService implements CommentService. The post repository is consulted
// on creation so that comments cannot be attached to posts that do not exist.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// CreateComment persists a new comment under the given post. Fails with the
// post repository's not-found error if the post does not exist.
func (c *commentService) CreateComment(ctx context.Context, postID, author, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if _, err := c.postRepository.FindPostByID(ctx, postID); err != nil {
		return models.Comment{}, fmt.Errorf("post search by id failed: %w", err)
	}

	objectID, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Comment{}, store.ErrInvalidObjectID
	}

	comment, err := c.commentRepository.CreateComment(ctx, models.Comment{
		PostID:  objectID,
		Author:  author,
		Content: content,
	})
	if err != nil {
		log.Err(err).Str("func", "commentService.CreateComment").Str("postId", postID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

func (c *commentService) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := c.commentRepository.FindCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return comments, nil
}

// UpdateComment replaces the comment text. Only the author may modify it.
func (c *commentService) UpdateComment(ctx context.Context, id, username, content string) (models.Comment, error) {
	comment, err := c.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment search by id failed: %w", err)
	}
	if comment.Author != username {
		return models.Comment{}, ErrNotResourceAuthor
	}

	updated, err := c.commentRepository.UpdateComment(ctx, id, content)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment update failed: %w", err)
	}

	return updated, nil
}

// DeleteComment removes the comment. Only the author may delete it.
func (c *commentService) DeleteComment(ctx context.Context, id, username string) error {
	comment, err := c.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return fmt.Errorf("comment search by id failed: %w", err)
	}
	if comment.Author != username {
		return ErrNotResourceAuthor
	}

	if err = c.commentRepository.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("comment delete failed: %w", err)
	}

	return nil
}
