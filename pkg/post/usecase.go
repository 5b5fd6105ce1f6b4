package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase covers the post lifecycle used by the HTTP layer and by the
// account cascade.
type UseCase interface {
	Create(ctx context.Context, userID uuid.UUID, name, avatar, text string) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	ListAll(ctx context.Context, limit, offset int) ([]Post, error)
	// Delete removes a post if it belongs to userID; ErrForbidden otherwise.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, userID uuid.UUID, name, avatar, text string) (Post, error) {
	if strings.TrimSpace(text) == "" {
		return Post{}, ErrTextRequired
	}
	p := Post{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Avatar:    avatar,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context, limit, offset int) ([]Post, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
