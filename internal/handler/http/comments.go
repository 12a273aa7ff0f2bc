package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
	"github.com/MKhiriev/go-board-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, chi.URLParam(r, "postId"), username, request.Content)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Info().Str("id", comment.ID.Hex()).Str("postId", comment.PostID.Hex()).Msg("comment created")

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listCommentsByPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comments, err := h.services.CommentService.ListCommentsByPost(ctx, chi.URLParam(r, "postId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.UpdateComment(ctx, chi.URLParam(r, "id"), username, request.Content)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, chi.URLParam(r, "id"), username); err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Comment deleted"}, http.StatusOK)
}
