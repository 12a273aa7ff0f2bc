// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-board-keeper/internal/cache"
	"github.com/MKhiriev/go-board-keeper/internal/config"
	"github.com/MKhiriev/go-board-keeper/internal/logger"
	"github.com/MKhiriev/go-board-keeper/internal/store"
	"github.com/MKhiriev/go-board-keeper/internal/utils"
	"github.com/MKhiriev/go-board-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the dual-token JWT
// lifecycle: short-lived access tokens, a single long-lived refresh token per
// user stored in Redis, and a Redis blacklist for revoked access tokens.
type authService struct {
	userRepository store.UserRepository

	// tokens stores refresh tokens and the access-token blacklist.
	tokens cache.TokenCache

	// cfg carries the sign keys, issuer and token lifetimes. Access and
	// refresh tokens are signed with different keys so that one class of
	// token can never be presented as the other.
	cfg config.Auth

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and token cache.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokens cache.TokenCache, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is hashed with bcrypt before persistence; the plain text is
// never stored. Returns the public projection of the persisted user or a
// wrapped storage error if the email or username is already taken (see
// store.ErrEmailAlreadyExists, store.ErrUsernameAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user.Public(), nil
}

// Login authenticates an existing user and issues a fresh token pair.
//
// The refresh token replaces whatever token the user held before, so at most
// one refresh token per user is ever valid. All credential failures collapse
// to ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, models.PublicUser, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, models.PublicUser{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.TokenPair{}, models.PublicUser{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return models.TokenPair{}, models.PublicUser{}, ErrInvalidCredentials
	}

	pair, err := a.issueTokenPair(ctx, user)
	if err != nil {
		return models.TokenPair{}, models.PublicUser{}, err
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.ID.Hex()); err != nil {
		// login stays valid even if the timestamp write fails
		log.Warn().Err(err).Str("id", user.ID.Hex()).Msg("last login update failed")
	}

	return pair, user.Public(), nil
}

// issueTokenPair signs an access and a refresh token for the user and stores
// the refresh token under the user's cache record.
func (a *authService) issueTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.ID.Hex(), user.Email, user.Username, a.cfg.AccessTokenDuration, a.cfg.AccessSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.ID.Hex(), user.Email, user.Username, a.cfg.RefreshTokenDuration, a.cfg.RefreshSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.tokens.SaveRefreshToken(ctx, user.ID.Hex(), refresh.SignedString, a.cfg.RefreshTokenDuration); err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh token save failed: %w", err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}

// Logout revokes the caller's session: the refresh token record is deleted
// and the presented access token is blacklisted until it would have expired
// anyway. The blacklist TTL is the configured access lifetime, which bounds
// the token's remaining validity from above.
func (a *authService) Logout(ctx context.Context, userID, accessToken string) error {
	log := logger.FromContext(ctx)

	if err := a.tokens.DeleteRefreshToken(ctx, userID); err != nil {
		log.Err(err).Str("func", "authService.Logout").Msg("refresh token delete failed")
		return fmt.Errorf("refresh token delete failed: %w", err)
	}

	if err := a.tokens.AddToBlacklist(ctx, accessToken, a.cfg.AccessTokenDuration); err != nil {
		log.Err(err).Str("func", "authService.Logout").Msg("access token blacklisting failed")
		return fmt.Errorf("access token blacklisting failed: %w", err)
	}

	return nil
}

// Refresh exchanges a valid refresh token for a new access token.
//
// The presented token must verify under the refresh sign key AND match the
// token currently stored for the user; a token invalidated by a newer login
// or by logout is rejected even if its signature is still valid. The refresh
// token itself is not rotated.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.cfg.RefreshSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	stored, err := a.tokens.GetRefreshToken(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "authService.Refresh").Msg("refresh token lookup failed")
		return models.Token{}, fmt.Errorf("refresh token lookup failed: %w", err)
	}
	if stored != refreshToken {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	access, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, token.UserID, token.Claims.Email, token.Claims.Username, a.cfg.AccessTokenDuration, a.cfg.AccessSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return access, nil
}

// ValidateAccessToken validates and parses a raw access token string.
//
// Any signature, issuer or expiry failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors. Blacklisted tokens fail with ErrTokenRevoked. A token whose
// subject no longer exists in the store is rejected the same way an expired
// one is: deleting an account invalidates its outstanding tokens.
func (a *authService) ValidateAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.AccessSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokens.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("blacklist check failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	if _, err = a.userRepository.FindUserByID(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Token{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return token, nil
}

// Me returns the public profile of the given user.
func (a *authService) Me(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

// UpdatePassword verifies the current password and replaces it with a bcrypt
// hash of the new one. Returns ErrWrongPassword if the current password does
// not match.
func (a *authService) UpdatePassword(ctx context.Context, userID string, request models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "authService.UpdatePassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
