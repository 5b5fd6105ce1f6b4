package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a short text entry published by a user. Author name and avatar are
// denormalized at creation time so listings need no join.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
