package http

import (
	"net/http"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/service"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
)

// withRateLimit guards chatbot routes with the per-user fixed-window quota.
// Must run after the auth middleware: the counter is keyed by the
// authenticated user ID. Over-limit requests are rejected with HTTP 429 and
// still consume a slot.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Str("func", "Handler.withRateLimit").Msg("no user id in context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		allowed, err := h.services.ChatbotService.AllowUser(r.Context(), userID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if !allowed {
			h.handleError(w, r, service.ErrRateLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withDailyLimit guards chatbot routes with the global per-day quota shared
// by all users.
func (h *Handler) withDailyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := h.services.ChatbotService.AllowDaily(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if !allowed {
			h.handleError(w, r, service.ErrDailyLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}
