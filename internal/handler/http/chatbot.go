package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
	"github.com/MKhiriev/go-board-keeper/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	response, err := h.services.ChatbotService.Chat(ctx, userID, request.Message)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) suggestTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SuggestTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	title, err := h.services.ChatbotService.SuggestTitle(ctx, request.Content)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TitleResponse{Title: title}, http.StatusOK)
}
