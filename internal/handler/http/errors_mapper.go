package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/service"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
	"github.com/MKhiriev/go-board-keeper/internal/validators"
	"github.com/MKhiriev/go-board-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenRevoked:            http.StatusUnauthorized,
	service.ErrNotResourceAuthor:       http.StatusForbidden,
	service.ErrRateLimitExceeded:       http.StatusTooManyRequests,
	service.ErrDailyLimitExceeded:      http.StatusTooManyRequests,
	service.ErrChatbotFailure:          http.StatusBadGateway,

	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrShortUsername:     http.StatusBadRequest,
	validators.ErrShortPassword:     http.StatusBadRequest,
	validators.ErrEmptyPassword:     http.StatusBadRequest,
	validators.ErrEmptyRefreshToken: http.StatusBadRequest,
	validators.ErrEmptyTitle:        http.StatusBadRequest,
	validators.ErrEmptyContent:      http.StatusBadRequest,
	validators.ErrEmptyMessage:      http.StatusBadRequest,
	validators.ErrMessageTooLong:    http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrPostNotFound:          http.StatusNotFound,
	store.ErrCommentNotFound:       http.StatusNotFound,
	store.ErrInvalidObjectID:       http.StatusBadRequest,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrDecodingDocument:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleError logs err and writes it to the client as a JSON message with
// the status resolved from errorStatusMap. Internal errors are masked with
// the generic status text so that storage details never leak.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
