// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultCategory is assigned to posts created without an explicit category.
const DefaultCategory = "general"

// Post represents a board entry in the "posts" collection.
// The author field is the username of the creator, denormalized at creation
// time; mutation is restricted to the matching authenticated username at the
// service layer.
type Post struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Author    string        `bson:"author" json:"author"`
	Category  string        `bson:"category" json:"category"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updated_at"`
}

// CollectionName returns the name of the database collection
// associated with the Post model.
func (p Post) CollectionName() string {
	return "posts"
}

// PostFilter carries the optional list filters and pagination window for
// querying posts. Zero values mean "no filter"; Page and Limit are
// normalized by the service before reaching the repository.
type PostFilter struct {
	// Search is matched case-insensitively as a substring of title OR content.
	Search string

	// Author is matched case-insensitively as a substring of the author field
	// and is combined with Search by AND.
	Author string

	// Category is matched exactly.
	Category string

	Page  int
	Limit int
}

// PostUpdate holds the mutable fields of a post. Nil pointers leave the
// stored value untouched.
type PostUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}
