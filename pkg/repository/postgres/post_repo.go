package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/api/pkg/post"
)

// PostRepository implements post.Repository backed by PostgreSQL.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) (*PostRepository, error) {
	repo := &PostRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			name TEXT NOT NULL DEFAULT '',
			avatar TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS posts_user_id_idx ON posts (user_id);
	`)
	return err
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, user_id, name, avatar, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.UserID, p.Name, p.Avatar, p.Text, p.CreatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, avatar, text, created_at
		FROM posts WHERE id = $1
	`, id)
	var p post.Post
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Avatar, &p.Text, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	p.CreatedAt = createdAt.UTC()
	return p, nil
}

func (r *PostRepository) ListAll(ctx context.Context, limit, offset int) ([]post.Post, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, avatar, text, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []post.Post
	for rows.Next() {
		var p post.Post
		var createdAt time.Time
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Avatar, &p.Text, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = createdAt.UTC()
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}
