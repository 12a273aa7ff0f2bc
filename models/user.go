// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents an account entity used for authentication and authorization.
// It is persisted in the "users" collection; email and username are enforced
// unique by indexes created at connect time.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// Email is the unique address used during authentication.
	Email string `bson:"email" json:"email"`

	// Username is the unique display name of the user. It is denormalized
	// into posts and comments as the author field.
	Username string `bson:"username" json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized outward.
	PasswordHash string `bson:"password" json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`

	// LastLoginAt is updated on each successful login. Nil until the first one.
	LastLoginAt *time.Time `bson:"lastLoginAt,omitempty" json:"last_login_at,omitempty"`
}

// CollectionName returns the name of the database collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}

// PublicUser is the outward-facing projection of a User.
// It carries only fields safe to return to any caller.
type PublicUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Public returns the outward-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID.Hex(),
		Email:       u.Email,
		Username:    u.Username,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
