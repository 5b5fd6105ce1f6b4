package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user User) error {
	key := strings.ToLower(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[key] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) { return "tok", nil }

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})

	res, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "Ada", res.User.Name)
	assert.Contains(t, res.User.Avatar, "gravatar.com/avatar/")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("hunter22")))

	_, err = svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGravatarURL(t *testing.T) {
	// Hash of the lower-cased, trimmed address.
	a := GravatarURL(" Ada@Example.com ")
	b := GravatarURL("ada@example.com")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "?s=200&r=pg&d=mm")
}
