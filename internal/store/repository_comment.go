package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// commentRepository is the MongoDB-backed implementation of
// [CommentRepository] over the "comments" collection.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with server-assigned
// fields. The parent post reference is not verified; a comment may outlive
// its post until the cascade delete runs.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.db.Collection(commentsCollection).InsertOne(ctx, comment); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: insert failed")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

// FindCommentsByPostID returns all comments of a post, newest-first.
func (r *commentRepository) FindCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrInvalidObjectID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(commentsCollection).Find(ctx, bson.M{"postId": objectID}, opts)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentsByPostID").Msg("error: find failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found := make([]models.Comment, 0)
	if err := cursor.All(ctx, &found); err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentsByPostID").Msg("error: decoding error")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return found, nil
}

// FindCommentByID retrieves a comment by its ObjectID hex representation.
//
// Error handling:
//   - Malformed id → [ErrInvalidObjectID].
//   - No matching document → [ErrCommentNotFound] wrapped with the id.
func (r *commentRepository) FindCommentByID(ctx context.Context, id string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Comment{}, ErrInvalidObjectID
	}

	var comment models.Comment
	err = r.db.Collection(commentsCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Comment{}, fmt.Errorf("comment %s: %w", id, ErrCommentNotFound)
		}
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Msg("error: decoding error")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// UpdateComment replaces the comment content, stamps updatedAt and returns
// the comment as stored after the mutation.
func (r *commentRepository) UpdateComment(ctx context.Context, id string, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Comment{}, ErrInvalidObjectID
	}

	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err = r.db.Collection(commentsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).
		Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Comment{}, fmt.Errorf("comment %s: %w", id, ErrCommentNotFound)
		}
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error: update failed")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return comment, nil
}

// DeleteComment removes a comment by id.
func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjectID
	}

	result, err := r.db.Collection(commentsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment %s: %w", id, ErrCommentNotFound)
	}

	return nil
}

// DeleteCommentsByPostID removes every comment of the given post and returns
// the number of removed documents. Used by the posts service to cascade a
// post deletion.
func (r *commentRepository) DeleteCommentsByPostID(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return 0, ErrInvalidObjectID
	}

	result, err := r.db.Collection(commentsCollection).DeleteMany(ctx, bson.M{"postId": objectID})
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteCommentsByPostID").Msg("error: delete failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.DeletedCount, nil
}
