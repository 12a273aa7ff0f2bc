package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names of the three persisted entities.
const (
	usersCollection    = "users"
	postsCollection    = "posts"
	commentsCollection = "comments"
)

// DB wraps the MongoDB client and the application database handle.
// It is shared by all repositories; the underlying client pools connections
// and is safe for concurrent use.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo establishes the MongoDB connection, pings the server and
// creates the unique indexes on users.email and users.username.
//
// The uniqueness of email and username is a data-model invariant, so the
// indexes are ensured on every start rather than by an out-of-band migration.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to database successfully")

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique user indexes and the createdAt sort
// indexes used by every listing query. Index creation is idempotent.
func (db *DB) ensureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.database.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	postIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	if _, err := db.database.Collection(postsCollection).Indexes().CreateMany(ctx, postIndexes); err != nil {
		return fmt.Errorf("error creating post indexes: %w", err)
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.database.Collection(commentsCollection).Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return fmt.Errorf("error creating comment indexes: %w", err)
	}

	return nil
}

// Collection returns a handle to the named collection of the application
// database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Close disconnects the underlying MongoDB client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
