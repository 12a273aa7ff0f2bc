package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
	"github.com/MKhiriev/go-board-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Info().Str("id", user.ID).Str("username", user.Username).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "Registration successful",
		User:    user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	pair, user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message:      "Login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	accessToken, ok := utils.GetAccessTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no access token in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID, accessToken); err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Logout successful"}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	access, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RefreshResponse{
		Message:     "Access token refreshed",
		AccessToken: access.SignedString,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.services.AuthService.UpdatePassword(ctx, userID, request); err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password updated successfully"}, http.StatusOK)
}
