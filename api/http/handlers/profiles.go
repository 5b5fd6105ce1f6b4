package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devconnect/api/api/http/presenter"
	"github.com/devconnect/api/pkg/github"
	"github.com/devconnect/api/pkg/profile"
)

type ProfileHandler struct {
	uc     profile.UseCase
	github *github.Client
}

func NewProfileHandler(uc profile.UseCase, gh *github.Client) *ProfileHandler {
	return &ProfileHandler{uc: uc, github: gh}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}

// profileError maps domain errors onto HTTP responses.
func profileError(c *fiber.Ctx, err error) error {
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		return presenter.FieldErrors(c, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, profile.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	case errors.Is(err, profile.ErrEntryNotFound):
		return presenter.Error(c, http.StatusNotFound, "profile entry not found")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "server error")
	}
}

type upsertProfileRequest struct {
	Status     string   `json:"status"`
	Skills     []string `json:"skills"`
	University *string  `json:"university"`
	Location   *string  `json:"location"`
	Bio        *string  `json:"bio"`
}

// Upsert creates the caller's profile or merges the supplied fields into it.
// @Summary Create or update own profile
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   input body upsertProfileRequest true "profile fields"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.FieldErrorsResponse
// @Router  /profiles [post]
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	// status and skills are required by the request contract even though
	// the store keeps only the scalar fields.
	var errs []fieldError
	if strings.TrimSpace(req.Status) == "" {
		errs = append(errs, fieldError{Field: "status", Message: "Status is required"})
	}
	if len(req.Skills) == 0 {
		errs = append(errs, fieldError{Field: "skills", Message: "Skills is required"})
	}
	if len(errs) > 0 {
		return presenter.FieldErrors(c, http.StatusBadRequest, errs)
	}

	p, err := h.uc.CreateOrUpdate(c.Context(), uid, profile.Fields{
		University: req.University,
		Location:   req.Location,
		Bio:        req.Bio,
	})
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Me returns the caller's profile.
// @Summary Own profile
// @Tags    profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	p, err := h.uc.GetByUser(c.Context(), uid)
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// List returns all profiles. Order is unspecified.
// @Summary List profiles
// @Tags    profiles
// @Produce json
// @Success 200 {array} profile.Profile
// @Router  /profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.uc.ListAll(c.Context())
	if err != nil {
		return profileError(c, err)
	}
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	return presenter.JSON(c, http.StatusOK, profiles)
}

// GetByUser returns the profile of the given user.
// @Summary Profile by user id
// @Tags    profiles
// @Produce json
// @Param   userId path string true "user id (UUID)"
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/user/{userId} [get]
func (h *ProfileHandler) GetByUser(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		// An unparseable id cannot reference a profile.
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}
	p, err := h.uc.GetByUser(c.Context(), uid)
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// DeleteAccount removes the caller's posts, profile and user record.
// @Summary Delete own account
// @Tags    profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles [delete]
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	if err := h.uc.DeleteAccount(c.Context(), uid); err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "user deleted"})
}

type experienceRequest struct {
	Title       string `json:"title"`
	University  string `json:"university"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// AddExperience prepends an experience entry to the caller's profile.
// @Summary Add experience
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   input body experienceRequest true "experience entry"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.FieldErrorsResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/experience [put]
func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.AddExperience(c.Context(), uid, profile.ExperienceInput{
		Title:       req.Title,
		University:  req.University,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// RemoveExperience deletes one experience entry by id.
// @Summary Remove experience
// @Tags    profiles
// @Produce json
// @Param   id path string true "experience id"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/experience/{id} [delete]
func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	p, err := h.uc.RemoveExperience(c.Context(), uid, c.Params("id"))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// AddEducation prepends an education entry to the caller's profile.
// @Summary Add education
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   input body educationRequest true "education entry"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.FieldErrorsResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/education [put]
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.AddEducation(c.Context(), uid, profile.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// RemoveEducation deletes one education entry by id.
// @Summary Remove education
// @Tags    profiles
// @Produce json
// @Param   id path string true "education id"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/education/{id} [delete]
func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	p, err := h.uc.RemoveEducation(c.Context(), uid, c.Params("id"))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// GithubRepos proxies the public repository listing for a GitHub username.
// @Summary GitHub repositories
// @Tags    profiles
// @Produce json
// @Param   username path string true "GitHub username"
// @Success 200 {array} github.Repo
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c *fiber.Ctx) error {
	repos, err := h.github.Repos(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "no GitHub profile found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to reach GitHub")
	}
	return presenter.JSON(c, http.StatusOK, repos)
}
