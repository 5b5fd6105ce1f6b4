package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/devconnect/api/api/http/presenter"
	"github.com/devconnect/api/pkg/auth"
	"github.com/devconnect/api/pkg/post"
)

type PostHandler struct {
	uc    post.UseCase
	users auth.UserRepository
}

func NewPostHandler(uc post.UseCase, users auth.UserRepository) *PostHandler {
	return &PostHandler{uc: uc, users: users}
}

type createPostRequest struct {
	Text string `json:"text"`
}

// Create publishes a post under the caller's name and avatar.
// @Summary Create post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   input body createPostRequest true "post body"
// @Security BearerAuth
// @Success 201 {object} post.Post
// @Failure 400 {object} presenter.FieldErrorsResponse
// @Router  /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Text) == "" {
		return presenter.FieldErrors(c, http.StatusBadRequest,
			[]fieldError{{Field: "text", Message: "Text is required"}})
	}
	user, err := h.users.GetByID(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}
	p, err := h.uc.Create(c.Context(), uid, user.Name, user.Avatar, req.Text)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create post")
	}
	return presenter.JSON(c, http.StatusCreated, p)
}

// List returns posts newest-first.
// @Summary List posts
// @Tags    posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} post.Post
// @Router  /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.ListAll(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	if items == nil {
		items = []post.Post{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one post by id.
// @Summary Get post
// @Tags    posts
// @Produce json
// @Param   id path string true "post id (UUID)"
// @Security BearerAuth
// @Success 200 {object} post.Post
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "post not found")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Delete removes the caller's own post.
// @Summary Delete post
// @Tags    posts
// @Produce json
// @Param   id path string true "post id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "failed to identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "post not found")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		switch {
		case errors.Is(err, post.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "post not found")
		case errors.Is(err, post.ErrForbidden):
			return presenter.Error(c, http.StatusUnauthorized, "user not authorized")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to delete post")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "post removed"})
}
