package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// FieldErrorsResponse mirrors the validation contract: a list of
// (field, message) entries.
type FieldErrorsResponse struct {
	Errors any `json:"errors"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func FieldErrors(c *fiber.Ctx, status int, fields any) error {
	return JSON(c, status, FieldErrorsResponse{Errors: fields})
}
