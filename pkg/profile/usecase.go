package profile

import (
	"context"

	"github.com/google/uuid"
)

// UseCase exposes the profile document lifecycle: merge-upsert of scalar
// fields, newest-first sub-record append/remove, and the cascading account
// delete.
type UseCase interface {
	CreateOrUpdate(ctx context.Context, userID uuid.UUID, f Fields) (Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (Profile, error)
	ListAll(ctx context.Context) ([]Profile, error)
	AddExperience(ctx context.Context, userID uuid.UUID, in ExperienceInput) (Profile, error)
	RemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, in EducationInput) (Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) CreateOrUpdate(ctx context.Context, userID uuid.UUID, f Fields) (Profile, error) {
	return s.repo.Upsert(ctx, userID, f)
}

func (s *service) GetByUser(ctx context.Context, userID uuid.UUID) (Profile, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Profile, error) {
	return s.repo.ListAll(ctx)
}

// AddExperience prepends a new entry: the collection stays newest-first.
// The profile must already exist; a missing one is ErrNotFound, not an
// implicit create.
func (s *service) AddExperience(ctx context.Context, userID uuid.UUID, in ExperienceInput) (Profile, error) {
	v := &validator{}
	v.require("title", in.Title, "Title is required")
	v.require("university", in.University, "University is required")
	v.require("from", in.From, "From date is required")
	if err := v.err(); err != nil {
		return Profile{}, err
	}

	p, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	entry := Experience{
		ID:          uuid.New(),
		Title:       in.Title,
		University:  in.University,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	items := append([]Experience{entry}, p.Experience...)
	if err := s.repo.UpdateExperience(ctx, userID, items); err != nil {
		return Profile{}, err
	}
	p.Experience = items
	return p, nil
}

// RemoveExperience drops the entry whose id has the given textual form.
// An id matching nothing is ErrEntryNotFound, never a silent success.
func (s *service) RemoveExperience(ctx context.Context, userID uuid.UUID, entryID string) (Profile, error) {
	p, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	items := make([]Experience, 0, len(p.Experience))
	found := false
	for _, e := range p.Experience {
		if !found && e.ID.String() == entryID {
			found = true
			continue
		}
		items = append(items, e)
	}
	if !found {
		return Profile{}, ErrEntryNotFound
	}
	if err := s.repo.UpdateExperience(ctx, userID, items); err != nil {
		return Profile{}, err
	}
	p.Experience = items
	return p, nil
}

func (s *service) AddEducation(ctx context.Context, userID uuid.UUID, in EducationInput) (Profile, error) {
	v := &validator{}
	v.require("school", in.School, "School is required")
	v.require("degree", in.Degree, "Degree is required")
	v.require("fieldofstudy", in.FieldOfStudy, "Field of study is required")
	v.require("from", in.From, "From date is required")
	if err := v.err(); err != nil {
		return Profile{}, err
	}

	p, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	entry := Education{
		ID:           uuid.New(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	items := append([]Education{entry}, p.Education...)
	if err := s.repo.UpdateEducation(ctx, userID, items); err != nil {
		return Profile{}, err
	}
	p.Education = items
	return p, nil
}

func (s *service) RemoveEducation(ctx context.Context, userID uuid.UUID, entryID string) (Profile, error) {
	p, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	items := make([]Education, 0, len(p.Education))
	found := false
	for _, e := range p.Education {
		if !found && e.ID.String() == entryID {
			found = true
			continue
		}
		items = append(items, e)
	}
	if !found {
		return Profile{}, ErrEntryNotFound
	}
	if err := s.repo.UpdateEducation(ctx, userID, items); err != nil {
		return Profile{}, err
	}
	p.Education = items
	return p, nil
}

// DeleteAccount removes the user's posts, profile and user record as one
// logical unit (posts first, then profile, then user).
func (s *service) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, userID)
}
