// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment represents a comment in the "comments" collection.
// PostID references the parent post but is not enforced by the database;
// cascade deletion is performed by the posts service when the parent post
// is removed.
type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    bson.ObjectID `bson:"postId" json:"post_id"`
	Content   string        `bson:"content" json:"content"`
	Author    string        `bson:"author" json:"author"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updated_at"`
}

// CollectionName returns the name of the database collection
// associated with the Comment model.
func (c Comment) CollectionName() string {
	return "comments"
}
