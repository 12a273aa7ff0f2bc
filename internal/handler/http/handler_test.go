package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/service"
	"github.com/MKhiriev/go-board-keeper/internal/validators"
	"github.com/MKhiriev/go-board-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn       func(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.TokenPair, models.PublicUser, error)
	logoutFn         func(ctx context.Context, userID, accessToken string) error
	refreshFn        func(ctx context.Context, refreshToken string) (models.Token, error)
	validateFn       func(ctx context.Context, tokenString string) (models.Token, error)
	meFn             func(ctx context.Context, userID string) (models.PublicUser, error)
	updatePasswordFn func(ctx context.Context, userID string, request models.UpdatePasswordRequest) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.PublicUser{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, models.PublicUser, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.TokenPair{}, models.PublicUser{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, userID, accessToken string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, userID, accessToken)
	}
	return nil
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ValidateAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.PublicUser, error) {
	if m.meFn != nil {
		return m.meFn(ctx, userID)
	}
	return models.PublicUser{}, nil
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, userID string, request models.UpdatePasswordRequest) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, userID, request)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PostService
// ─────────────────────────────────────────────

type mockPostService struct {
	createFn func(ctx context.Context, author string, request models.CreatePostRequest) (models.Post, error)
	listFn   func(ctx context.Context, filter models.PostFilter) (models.PostPage, error)
	getFn    func(ctx context.Context, id string) (models.Post, error)
	updateFn func(ctx context.Context, id, username string, update models.PostUpdate) (models.Post, error)
	deleteFn func(ctx context.Context, id, username string) error
}

func (m *mockPostService) CreatePost(ctx context.Context, author string, request models.CreatePostRequest) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, author, request)
	}
	return models.Post{}, nil
}

func (m *mockPostService) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return models.PostPage{}, nil
}

func (m *mockPostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Post{}, nil
}

func (m *mockPostService) UpdatePost(ctx context.Context, id, username string, update models.PostUpdate) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, username, update)
	}
	return models.Post{}, nil
}

func (m *mockPostService) DeletePost(ctx context.Context, id, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, username)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.CommentService
// ─────────────────────────────────────────────

type mockCommentService struct {
	createFn     func(ctx context.Context, postID, author, content string) (models.Comment, error)
	listByPostFn func(ctx context.Context, postID string) ([]models.Comment, error)
	updateFn     func(ctx context.Context, id, username, content string) (models.Comment, error)
	deleteFn     func(ctx context.Context, id, username string) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, postID, author, content string) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, author, content)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) ListCommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, id, username, content string) (models.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, username, content)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id, username string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, username)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ChatbotService
// ─────────────────────────────────────────────

type mockChatbotService struct {
	chatFn         func(ctx context.Context, userID, message string) (models.ChatResponse, error)
	suggestTitleFn func(ctx context.Context, content string) (string, error)
	allowUserFn    func(ctx context.Context, userID string) (bool, error)
	allowDailyFn   func(ctx context.Context) (bool, error)
}

func (m *mockChatbotService) Chat(ctx context.Context, userID, message string) (models.ChatResponse, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, userID, message)
	}
	return models.ChatResponse{}, nil
}

func (m *mockChatbotService) SuggestTitle(ctx context.Context, content string) (string, error) {
	if m.suggestTitleFn != nil {
		return m.suggestTitleFn(ctx, content)
	}
	return "", nil
}

func (m *mockChatbotService) AllowUser(ctx context.Context, userID string) (bool, error) {
	if m.allowUserFn != nil {
		return m.allowUserFn(ctx, userID)
	}
	return true, nil
}

func (m *mockChatbotService) AllowDaily(ctx context.Context) (bool, error) {
	if m.allowDailyFn != nil {
		return m.allowDailyFn(ctx)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Mock: service.NewsService
// ─────────────────────────────────────────────

type mockNewsService struct {
	topHeadlinesFn func(ctx context.Context, country, category string, pageSize int) (models.Headlines, error)
}

func (m *mockNewsService) TopHeadlines(ctx context.Context, country, category string, pageSize int) (models.Headlines, error) {
	if m.topHeadlinesFn != nil {
		return m.topHeadlinesFn(ctx, country, category, pageSize)
	}
	return models.Headlines{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *mockAuthService
	posts    *mockPostService
	comments *mockCommentService
	chatbot  *mockChatbotService
	news     *mockNewsService
}

// newTestHandler builds a Handler with the given service mocks; nil fields
// default to empty mocks.
func newTestHandler(t *testing.T, svcs testServices) *Handler {
	t.Helper()

	if svcs.auth == nil {
		svcs.auth = &mockAuthService{}
	}
	if svcs.posts == nil {
		svcs.posts = &mockPostService{}
	}
	if svcs.comments == nil {
		svcs.comments = &mockCommentService{}
	}
	if svcs.chatbot == nil {
		svcs.chatbot = &mockChatbotService{}
	}
	if svcs.news == nil {
		svcs.news = &mockNewsService{}
	}

	return NewHandler(&service.Services{
		AuthService:    svcs.auth,
		PostService:    svcs.posts,
		CommentService: svcs.comments,
		ChatbotService: svcs.chatbot,
		NewsService:    svcs.news,
	}, validators.NewRequestValidator(), logger.Nop())
}

// authorizedValidateFn returns a validateFn accepting exactly token and
// resolving to the given identity.
func authorizedValidateFn(token, userID, username string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != token {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{
			UserID: userID,
			Claims: models.Claims{Email: username + "@example.com", Username: username},
		}, nil
	}
}
