package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory profile.Repository with the same merge and
// uniqueness behavior the Postgres implementation guarantees.
type fakeRepo struct {
	profiles map[uuid.UUID]*Profile
	deleted  []uuid.UUID
	failNext error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[uuid.UUID]*Profile)}
}

func (r *fakeRepo) Upsert(_ context.Context, userID uuid.UUID, f Fields) (Profile, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return Profile{}, err
	}
	p, ok := r.profiles[userID]
	if !ok {
		p = &Profile{UserID: userID, Experience: []Experience{}, Education: []Education{}}
		r.profiles[userID] = p
	}
	if f.University != nil {
		p.University = *f.University
	}
	if f.Location != nil {
		p.Location = *f.Location
	}
	if f.Bio != nil {
		p.Bio = *f.Bio
	}
	return *p, nil
}

func (r *fakeRepo) GetByUser(_ context.Context, userID uuid.UUID) (Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return *p, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]Profile, error) {
	var res []Profile
	for _, p := range r.profiles {
		res = append(res, *p)
	}
	return res, nil
}

func (r *fakeRepo) UpdateExperience(_ context.Context, userID uuid.UUID, items []Experience) error {
	p, ok := r.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	p.Experience = items
	return nil
}

func (r *fakeRepo) UpdateEducation(_ context.Context, userID uuid.UUID, items []Education) error {
	p, ok := r.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	p.Education = items
	return nil
}

func (r *fakeRepo) DeleteAccount(_ context.Context, userID uuid.UUID) error {
	if _, ok := r.profiles[userID]; !ok {
		return ErrNotFound
	}
	delete(r.profiles, userID)
	r.deleted = append(r.deleted, userID)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateOrUpdateMergesFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()

	p, err := svc.CreateOrUpdate(context.Background(), uid, Fields{University: strPtr("MIT")})
	require.NoError(t, err)
	assert.Equal(t, "MIT", p.University)
	assert.Empty(t, p.Experience)
	assert.Empty(t, p.Education)

	// A second upsert supplying only location must keep the university.
	p, err = svc.CreateOrUpdate(context.Background(), uid, Fields{Location: strPtr("Boston")})
	require.NoError(t, err)
	assert.Equal(t, "MIT", p.University)
	assert.Equal(t, "Boston", p.Location)
}

func TestCreateOrUpdateIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()
	fields := Fields{University: strPtr("MIT"), Bio: strPtr("hi")}

	first, err := svc.CreateOrUpdate(context.Background(), uid, fields)
	require.NoError(t, err)
	second, err := svc.CreateOrUpdate(context.Background(), uid, fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.profiles, 1)
}

func TestAddExperiencePrepends(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()
	_, err := svc.CreateOrUpdate(context.Background(), uid, Fields{})
	require.NoError(t, err)

	_, err = svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Intern", University: "Acme", From: "2020",
	})
	require.NoError(t, err)
	p, err := svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Engineer", University: "Acme", From: "2021",
	})
	require.NoError(t, err)

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
	assert.Equal(t, "Intern", p.Experience[1].Title)
	assert.NotEqual(t, p.Experience[0].ID, p.Experience[1].ID)
}

func TestAddExperienceRequiresProfile(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.AddExperience(context.Background(), uuid.New(), ExperienceInput{
		Title: "Intern", University: "Acme", From: "2020",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddExperienceValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.AddExperience(context.Background(), uuid.New(), ExperienceInput{Location: "Remote"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)
	fields := []string{verr.Fields[0].Field, verr.Fields[1].Field, verr.Fields[2].Field}
	assert.ElementsMatch(t, []string{"title", "university", "from"}, fields)
}

func TestAddEducationValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.AddEducation(context.Background(), uuid.New(), EducationInput{School: "MIT"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"degree", "fieldofstudy", "from"}, fields)
}

func TestRemoveExperience(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()
	_, err := svc.CreateOrUpdate(context.Background(), uid, Fields{})
	require.NoError(t, err)
	p, err := svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Intern", University: "Acme", From: "2020",
	})
	require.NoError(t, err)
	p, err = svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Engineer", University: "Acme", From: "2021",
	})
	require.NoError(t, err)

	target := p.Experience[1].ID.String()
	p, err = svc.RemoveExperience(context.Background(), uid, target)
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
}

// Removal of an unknown identifier reports ErrEntryNotFound for both record
// kinds; neither a silent success nor a generic failure.
func TestRemoveUnknownEntry(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()
	_, err := svc.CreateOrUpdate(context.Background(), uid, Fields{})
	require.NoError(t, err)
	_, err = svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Intern", University: "Acme", From: "2020",
	})
	require.NoError(t, err)
	_, err = svc.AddEducation(context.Background(), uid, EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2016",
	})
	require.NoError(t, err)

	_, err = svc.RemoveExperience(context.Background(), uid, "not-a-real-id")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	_, err = svc.RemoveEducation(context.Background(), uid, "not-a-real-id")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// Collections unchanged after the failed removals.
	p, err := svc.GetByUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Len(t, p.Experience, 1)
	assert.Len(t, p.Education, 1)
}

func TestRemoveEducation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()
	_, err := svc.CreateOrUpdate(context.Background(), uid, Fields{})
	require.NoError(t, err)
	p, err := svc.AddEducation(context.Background(), uid, EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2016",
	})
	require.NoError(t, err)

	p, err = svc.RemoveEducation(context.Background(), uid, p.Education[0].ID.String())
	require.NoError(t, err)
	assert.Empty(t, p.Education)
}

func TestGetByUserMissing(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.GetByUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountLifecycle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	uid := uuid.New()

	p, err := svc.CreateOrUpdate(context.Background(), uid, Fields{University: strPtr("MIT")})
	require.NoError(t, err)
	assert.Empty(t, p.Experience)

	p, err = svc.AddExperience(context.Background(), uid, ExperienceInput{
		Title: "Intern", University: "Acme", From: "2020",
	})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)

	p, err = svc.RemoveExperience(context.Background(), uid, p.Experience[0].ID.String())
	require.NoError(t, err)
	assert.Empty(t, p.Experience)

	require.NoError(t, svc.DeleteAccount(context.Background(), uid))
	_, err = svc.GetByUser(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []uuid.UUID{uid}, repo.deleted)
}

func TestCreateOrUpdateStorageFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failNext = errors.New("connection reset")
	svc := NewService(repo)

	_, err := svc.CreateOrUpdate(context.Background(), uuid.New(), Fields{})
	assert.EqualError(t, err, "connection reset")
}
