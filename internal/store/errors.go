// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a query or mutation targets a post id
	// that does not exist in the database. Repository methods wrap it with
	// the offending id, so match with [errors.Is] rather than equality.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when a query or mutation targets a
	// comment id that does not exist in the database. Wrapped with the id
	// like [ErrPostNotFound].
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrInvalidObjectID is returned when an id-keyed lookup receives a string
	// that is not a valid ObjectID hex representation.
	ErrInvalidObjectID = errors.New("invalid object id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrExecutingQuery is returned when executing a find or count operation
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing an insert, update or
	// delete operation fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrDecodingDocument is returned when decoding a result document into a
	// destination struct fails.
	ErrDecodingDocument = errors.New("failed to decode document")
)
