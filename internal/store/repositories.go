package store

import (
	"github.com/MKhiriev/go-board-keeper/internal/logger"
)

// Repositories bundles the data-access layer handed to the service
// constructors.
type Repositories struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
}

// NewRepositories constructs all repositories over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
	}
}
