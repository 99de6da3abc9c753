package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPostImage = "https://i.ibb.co.com/ryNv8bc/image-placeholder.jpg"

type Post struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content" bson:"content"`
	Tags        []string           `json:"tags" bson:"tags"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	AuthorEmail string             `json:"authorEmail" bson:"authorEmail"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// PostPatch is a partial update of a post. A nil or empty field keeps the
// stored value; authorEmail, tags and createdAt cannot be patched.
type PostPatch struct {
	Title    *string
	Content  *string
	ImageURL *string
}

// HasBody reports whether the patch carries a non-empty title or content.
func (p PostPatch) HasBody() bool {
	return nonEmpty(p.Title) || nonEmpty(p.Content)
}

// Apply returns a copy of post with the supplied fields merged over it.
func (p PostPatch) Apply(post Post) Post {
	if nonEmpty(p.Title) {
		post.Title = *p.Title
	}
	if nonEmpty(p.Content) {
		post.Content = *p.Content
	}
	if nonEmpty(p.ImageURL) {
		post.ImageURL = *p.ImageURL
	}
	return post
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
