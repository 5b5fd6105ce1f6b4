package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/api/pkg/profile"
)

// stubProfileUC returns canned results so the handler's status mapping can
// be exercised without storage.
type stubProfileUC struct {
	profile profile.Profile
	err     error
}

func (s *stubProfileUC) CreateOrUpdate(context.Context, uuid.UUID, profile.Fields) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) GetByUser(context.Context, uuid.UUID) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) ListAll(context.Context) ([]profile.Profile, error) {
	return nil, s.err
}
func (s *stubProfileUC) AddExperience(context.Context, uuid.UUID, profile.ExperienceInput) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) RemoveExperience(context.Context, uuid.UUID, string) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) AddEducation(context.Context, uuid.UUID, profile.EducationInput) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) RemoveEducation(context.Context, uuid.UUID, string) (profile.Profile, error) {
	return s.profile, s.err
}
func (s *stubProfileUC) DeleteAccount(context.Context, uuid.UUID) error {
	return s.err
}

func newProfileApp(uc profile.UseCase) *fiber.App {
	app := fiber.New()
	// Stand-in for the JWT middleware: every request is the same user.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.New().String())
		return c.Next()
	})
	h := NewProfileHandler(uc, nil)
	app.Post("/profiles", h.Upsert)
	app.Get("/profiles/user/:userId", h.GetByUser)
	app.Delete("/profiles/experience/:id", h.RemoveExperience)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestUpsertValidatesStatusAndSkills(t *testing.T) {
	app := newProfileApp(&stubProfileUC{})

	resp, body := doJSON(t, app, http.MethodPost, "/profiles", `{"university":"MIT"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Errors []fieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Errors, 2)
	assert.Equal(t, "status", payload.Errors[0].Field)
	assert.Equal(t, "skills", payload.Errors[1].Field)
}

func TestUpsertPassesFields(t *testing.T) {
	uid := uuid.New()
	app := newProfileApp(&stubProfileUC{profile: profile.Profile{UserID: uid, University: "MIT"}})

	resp, body := doJSON(t, app, http.MethodPost, "/profiles",
		`{"status":"student","skills":["go"],"university":"MIT"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var p profile.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, uid, p.UserID)
	assert.Equal(t, "MIT", p.University)
}

func TestGetByUserNotFound(t *testing.T) {
	app := newProfileApp(&stubProfileUC{err: profile.ErrNotFound})

	resp, _ := doJSON(t, app, http.MethodGet, "/profiles/user/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unparseable ids cannot reference a profile either.
	resp, _ = doJSON(t, app, http.MethodGet, "/profiles/user/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRemoveExperienceEntryNotFound(t *testing.T) {
	app := newProfileApp(&stubProfileUC{err: profile.ErrEntryNotFound})

	resp, body := doJSON(t, app, http.MethodDelete, "/profiles/experience/not-a-real-id", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "profile entry not found")
}
