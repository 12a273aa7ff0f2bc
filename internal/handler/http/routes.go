package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)

		// the board itself is readable anonymously
		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)

		r.Get("/comments/post/{postId}", h.listCommentsByPost)

		r.Get("/news/top-headlines", h.topHeadlines)
	})

	// routes behind the access-token guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
		r.Patch("/auth/password", h.updatePassword)

		r.Post("/posts", h.createPost)
		r.Patch("/posts/{id}", h.updatePost)
		r.Delete("/posts/{id}", h.deletePost)

		r.Post("/comments/{postId}", h.createComment)
		r.Patch("/comments/{id}", h.updateComment)
		r.Delete("/comments/{id}", h.deleteComment)

		// the chatbot group additionally consumes the per-user and
		// global daily quotas
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Use(h.withDailyLimit)

			r.Post("/chatbot/chat", h.chat)
			r.Post("/chatbot/suggest-title", h.suggestTitle)
		})
	})

	return router
}
