package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devconnect/api/api/http/presenter"
	"github.com/devconnect/api/pkg/auth"
)

// fieldError mirrors profile.FieldError for handler-level presence checks.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateRegister(req registerRequest) []fieldError {
	var errs []fieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, fieldError{Field: "name", Message: "Name is required"})
	}
	if !strings.Contains(req.Email, "@") {
		errs = append(errs, fieldError{Field: "email", Message: "Please include a valid email"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, fieldError{Field: "password", Message: "Please enter a password with 6 or more characters"})
	}
	return errs
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.FieldErrorsResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /users [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if errs := validateRegister(req); len(errs) > 0 {
		return presenter.FieldErrors(c, http.StatusBadRequest, errs)
	}

	result, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch err {
		case auth.ErrUserAlreadyExists:
			return presenter.Error(c, http.StatusConflict, "user already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":     result.User.ID.String(),
		"name":   result.User.Name,
		"email":  result.User.Email,
		"avatar": result.User.Avatar,
		"token":  result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":    result.User.ID.String(),
		"name":  result.User.Name,
		"email": result.User.Email,
		"token": result.Token,
	})
}

// Me returns the authenticated user's public record.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	user, err := h.useCase.CurrentUser(c.Context(), uid)
	if err != nil {
		if err == auth.ErrNotFound {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":     user.ID.String(),
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.Avatar,
	})
}
