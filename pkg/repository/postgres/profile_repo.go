package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/api/pkg/profile"
)

// ProfileRepository implements profile.Repository backed by PostgreSQL.
//
// The profile is stored document-style: one row per user with the
// experience/education sub-records as JSONB arrays. The user_id primary key
// is the storage-level guarantee that concurrent first upserts cannot create
// two profiles for one user.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	repo := &ProfileRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY REFERENCES users(id),
			university TEXT,
			location TEXT,
			bio TEXT,
			experience JSONB NOT NULL DEFAULT '[]',
			education JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

// Upsert merges in one statement: omitted (nil) fields fall back to the
// stored value, so concurrent upserts for the same user never lose fields
// and never duplicate the row.
func (r *ProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, f profile.Fields) (profile.Profile, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, university, location, bio, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			university = COALESCE($2, profiles.university),
			location   = COALESCE($3, profiles.location),
			bio        = COALESCE($4, profiles.bio),
			updated_at = $5
	`, userID, f.University, f.Location, f.Bio, time.Now().UTC())
	if err != nil {
		return profile.Profile{}, err
	}
	return r.GetByUser(ctx, userID)
}

const profileSelect = `
	SELECT p.user_id, u.name, u.avatar,
	       COALESCE(p.university, ''), COALESCE(p.location, ''), COALESCE(p.bio, ''),
	       p.experience, p.education, p.updated_at
	FROM profiles p
	JOIN users u ON u.id = p.user_id
`

func (r *ProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, profileSelect+`WHERE p.user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.pool.Query(ctx, profileSelect)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) UpdateExperience(ctx context.Context, userID uuid.UUID, items []profile.Experience) error {
	if items == nil {
		items = []profile.Experience{}
	}
	return r.updateEntries(ctx, userID, "experience", items)
}

func (r *ProfileRepository) UpdateEducation(ctx context.Context, userID uuid.UUID, items []profile.Education) error {
	if items == nil {
		items = []profile.Education{}
	}
	return r.updateEntries(ctx, userID, "education", items)
}

func (r *ProfileRepository) updateEntries(ctx context.Context, userID uuid.UUID, column string, items any) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET `+column+` = $2, updated_at = $3 WHERE user_id = $1
	`, userID, items, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// DeleteAccount removes posts, profile and user in a single transaction,
// keeping the documented posts -> profile -> user ordering. Postgres
// transactions close the partial-failure window a plain delete sequence
// would leave open.
func (r *ProfileRepository) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var updatedAt time.Time
	err := row.Scan(&p.UserID, &p.Name, &p.Avatar,
		&p.University, &p.Location, &p.Bio,
		&p.Experience, &p.Education, &updatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	if p.Experience == nil {
		p.Experience = []profile.Experience{}
	}
	if p.Education == nil {
		p.Education = []profile.Education{}
	}
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
