package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// postService implements PostService over the post and comment repositories.
// The comment repository is needed for the cascade delete: removing a post
// removes its comments.
type postService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, commentRepository store.CommentRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreatePost persists a new post. The author always comes from the
// authenticated identity, never from the request body.
func (p *postService) CreatePost(ctx context.Context, author string, request models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:    request.Title,
		Content:  request.Content,
		Author:   author,
		Category: request.Category,
	})
	if err != nil {
		log.Err(err).Str("func", "postService.CreatePost").Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching the filter, newest first,
// together with the pagination metadata.
//
// Page and limit are normalised before the query: non-positive values fall
// back to page 1 and the default limit, and the limit is capped.
func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	posts, total, err := p.postRepository.FindPosts(ctx, filter)
	if err != nil {
		return models.PostPage{}, fmt.Errorf("post listing ended with error: %w", err)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return models.PostPage{
		Items:      posts,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

func (p *postService) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return post, nil
}

// UpdatePost applies a partial update to the post. Only the author may
// modify it; anyone else gets ErrNotResourceAuthor.
func (p *postService) UpdatePost(ctx context.Context, id, username string, update models.PostUpdate) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}
	if post.Author != username {
		return models.Post{}, ErrNotResourceAuthor
	}

	updated, err := p.postRepository.UpdatePost(ctx, id, update)
	if err != nil {
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes the post and all of its comments. Only the author may
// delete it. The two deletes are separate operations; a crash in between
// leaves orphaned comments behind, which the post-scoped comment listing
// never surfaces.
func (p *postService) DeletePost(ctx context.Context, id, username string) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("post search by id failed: %w", err)
	}
	if post.Author != username {
		return ErrNotResourceAuthor
	}

	if err = p.postRepository.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("post delete failed: %w", err)
	}

	deleted, err := p.commentRepository.DeleteCommentsByPostID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "postService.DeletePost").Str("postId", id).Msg("comment cascade delete failed")
		return fmt.Errorf("comment cascade delete failed: %w", err)
	}
	log.Info().Str("postId", id).Int64("comments", deleted).Msg("post deleted")

	return nil
}
