package service

import (
	"github.com/MKhiriev/go-board-keeper/internal/adapter"
	"github.com/MKhiriev/go-board-keeper/internal/cache"
	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	ChatbotService ChatbotService
	NewsService    NewsService
}

// NewServices wires all services over the shared repositories, the Redis
// cache and the outbound clients. ai may be nil when no API key is
// configured; the chatbot then runs in degraded mode.
func NewServices(repositories *store.Repositories, c *cache.Cache, ai adapter.AIClient, news adapter.NewsClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, c, cfg.Auth, logger),
		PostService:    NewPostService(repositories.PostRepository, repositories.CommentRepository, logger),
		CommentService: NewCommentService(repositories.CommentRepository, repositories.PostRepository, logger),
		ChatbotService: NewChatbotService(ai, repositories.PostRepository, c, c, cfg.Chatbot, logger),
		NewsService:    NewNewsService(news, logger),
	}
}
