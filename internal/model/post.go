package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    Author             `bson:"author" json:"author"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Status    string             `bson:"status" json:"status"`
	ReadTime  int                `bson:"readTime" json:"readTime"`
	Views     int64              `bson:"views" json:"views"`
	Likes     int64              `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
}

// Comment lives embedded in its parent post. Its id is minted
// independently of the store and is unique within the parent only.
type Comment struct {
	ID        string    `bson:"_id" json:"_id"`
	Content   string    `bson:"content" json:"content"`
	Author    Author    `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Likes     int64     `bson:"likes" json:"likes"`
}
