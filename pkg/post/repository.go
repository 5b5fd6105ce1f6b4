package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrForbidden    = errors.New("post belongs to another user")
	ErrTextRequired = errors.New("text is required")
)

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	// ListAll returns posts newest-first.
	ListAll(ctx context.Context, limit, offset int) ([]Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
