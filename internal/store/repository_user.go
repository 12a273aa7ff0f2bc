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
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Email and username are pre-checked for duplicates so the caller receives a
// field-specific conflict error; the unique indexes remain the authoritative
// guard against concurrent registrations.
//
// Error handling:
//   - Duplicate email    → [ErrEmailAlreadyExists].
//   - Duplicate username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	users := r.db.Collection(usersCollection)

	err := users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return models.User{}, ErrEmailAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: email lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err = users.FindOne(ctx, bson.M{"username": user.Username}).Err()
	if err == nil {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: username lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := users.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		// two concurrent registrations can pass the pre-checks; the unique
		// index reports the loser here
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record whose email matches the given one.
//
// Error handling:
//   - No matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: decoding error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its ObjectID hex representation.
//
// Error handling:
//   - Malformed id → [ErrInvalidObjectID].
//   - No matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidObjectID
	}

	var foundUser models.User
	err = r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: decoding error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateLastLogin stamps lastLoginAt with the current time.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjectID
	}

	update := bson.M{"$set": bson.M{"lastLoginAt": time.Now()}}
	result, err := r.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash and refreshes updatedAt.
func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	log := logger.FromContext(ctx)

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjectID
	}

	update := bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()}}
	result, err := r.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
