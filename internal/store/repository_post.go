package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// postRepository is the MongoDB-backed implementation of [PostRepository]
// over the "posts" collection.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns it with server-assigned fields.
// An empty category falls back to [models.DefaultCategory].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.Category == "" {
		post.Category = models.DefaultCategory
	}

	now := time.Now()
	post.ID = bson.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.db.Collection(postsCollection).InsertOne(ctx, post); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: insert failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// postListQuery translates a [models.PostFilter] into a Mongo filter document.
//
// Search matches title OR content as a case-insensitive substring; the author
// filter is ANDed with it; category is an exact match. User input is
// regex-quoted so that "c++" searches for the literal characters.
func postListQuery(filter models.PostFilter) bson.M {
	query := bson.M{}

	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"content": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if filter.Author != "" {
		query["author"] = bson.M{"$regex": regexp.QuoteMeta(filter.Author), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	return query
}

// FindPosts returns one page of posts matching the filter, newest-first,
// together with the total match count for pagination.
func (r *postRepository) FindPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int64, error) {
	log := logger.FromContext(ctx)
	posts := r.db.Collection(postsCollection)

	query := postListQuery(filter)

	total, err := posts.CountDocuments(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPosts").Msg("error: count failed")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := posts.Find(ctx, query, opts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPosts").Msg("error: find failed")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found := make([]models.Post, 0, filter.Limit)
	if err := cursor.All(ctx, &found); err != nil {
		log.Err(err).Str("func", "*postRepository.FindPosts").Msg("error: decoding error")
		return nil, 0, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return found, total, nil
}

// FindPostByID retrieves a post by its ObjectID hex representation.
//
// Error handling:
//   - Malformed id → [ErrInvalidObjectID].
//   - No matching document → [ErrPostNotFound] wrapped with the id.
func (r *postRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, ErrInvalidObjectID
	}

	var post models.Post
	err = r.db.Collection(postsCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, fmt.Errorf("post %s: %w", id, ErrPostNotFound)
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error: decoding error")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// UpdatePost applies the non-nil fields of update, stamps updatedAt and
// returns the post as stored after the mutation.
func (r *postRepository) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, ErrInvalidObjectID
	}

	fields := bson.M{"updatedAt": time.Now()}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err = r.db.Collection(postsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields}, opts).
		Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, fmt.Errorf("post %s: %w", id, ErrPostNotFound)
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: update failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// DeletePost removes a post by id.
//
// Deleting the post's comments is the caller's responsibility; the two
// operations are independent and non-atomic.
func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjectID
	}

	result, err := r.db.Collection(postsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id, ErrPostNotFound)
	}

	return nil
}

// SearchByKeywords returns up to limit posts whose title or content matches
// any of the keywords case-insensitively, newest-first. An empty keyword set
// yields an empty result without touching the database.
func (r *postRepository) SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	if len(keywords) == 0 {
		return nil, nil
	}

	clauses := make([]bson.M, 0, len(keywords)*2)
	for _, keyword := range keywords {
		pattern := regexp.QuoteMeta(keyword)
		clauses = append(clauses,
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": pattern, "$options": "i"}},
		)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection(postsCollection).Find(ctx, bson.M{"$or": clauses}, opts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.SearchByKeywords").Msg("error: find failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found := make([]models.Post, 0, limit)
	if err := cursor.All(ctx, &found); err != nil {
		log.Err(err).Str("func", "*postRepository.SearchByKeywords").Msg("error: decoding error")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return found, nil
}
