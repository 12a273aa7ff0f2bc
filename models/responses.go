// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by login: both tokens plus public user fields.
type AuthResponse struct {
	Message      string     `json:"message"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         PublicUser `json:"user"`
}

// RegisterResponse is returned by register.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// RefreshResponse is returned by the token refresh endpoint. Only the access
// token is reissued; the refresh token is not rotated.
type RefreshResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// PostPage is the paginated post listing.
// TotalPages is ceil(Total/limit) for the limit used in the query.
type PostPage struct {
	Items      []Post `json:"items"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// TitleResponse is returned by the title suggestion endpoint.
type TitleResponse struct {
	Title string `json:"title"`
}
