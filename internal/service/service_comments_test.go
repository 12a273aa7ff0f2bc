package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestCommentService(comments *mockCommentRepository, posts *mockPostRepository) CommentService {
	return NewCommentService(comments, posts, logger.Nop())
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	postID := bson.NewObjectID()

	var created models.Comment
	posts := &mockPostRepository{
		findByIDFn: func(_ context.Context, id string) (models.Post, error) {
			assert.Equal(t, postID.Hex(), id)
			return models.Post{ID: postID}, nil
		},
	}
	comments := &mockCommentRepository{
		createFn: func(_ context.Context, comment models.Comment) (models.Comment, error) {
			created = comment
			return comment, nil
		},
	}
	svc := newTestCommentService(comments, posts)

	_, err := svc.CreateComment(context.Background(), postID.Hex(), "gopher", "nice post")

	require.NoError(t, err)
	assert.Equal(t, postID, created.PostID)
	assert.Equal(t, "gopher", created.Author)
	assert.Equal(t, "nice post", created.Content)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	comments := &mockCommentRepository{
		createFn: func(_ context.Context, _ models.Comment) (models.Comment, error) {
			t.Fatal("create must not be reached")
			return models.Comment{}, nil
		},
	}
	svc := newTestCommentService(comments, &mockPostRepository{})

	_, err := svc.CreateComment(context.Background(), bson.NewObjectID().Hex(), "gopher", "orphan")

	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestCommentService_UpdateComment_NotAuthor(t *testing.T) {
	comments := &mockCommentRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Comment, error) {
			return models.Comment{Author: "gopher"}, nil
		},
	}
	svc := newTestCommentService(comments, &mockPostRepository{})

	_, err := svc.UpdateComment(context.Background(), bson.NewObjectID().Hex(), "intruder", "edited")

	assert.ErrorIs(t, err, ErrNotResourceAuthor)
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	commentID := bson.NewObjectID().Hex()

	var deleted string
	comments := &mockCommentRepository{
		findByIDFn: func(_ context.Context, _ string) (models.Comment, error) {
			return models.Comment{Author: "gopher"}, nil
		},
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newTestCommentService(comments, &mockPostRepository{})

	err := svc.DeleteComment(context.Background(), commentID, "gopher")

	require.NoError(t, err)
	assert.Equal(t, commentID, deleted)
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	svc := newTestCommentService(&mockCommentRepository{}, &mockPostRepository{})

	err := svc.DeleteComment(context.Background(), bson.NewObjectID().Hex(), "gopher")

	assert.ErrorIs(t, err, store.ErrCommentNotFound)
}
