package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devconnect/api/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler,
	profiles *handlers.ProfileHandler, posts *handlers.PostHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/users", auth.Register)
	a := v1.Group("/auth")
	a.Post("/login", auth.Login)
	a.Get("/me", authMW, auth.Me)

	pr := v1.Group("/profiles")
	pr.Get("/", profiles.List)
	pr.Post("/", authMW, profiles.Upsert)
	pr.Delete("/", authMW, profiles.DeleteAccount)
	pr.Get("/me", authMW, profiles.Me)
	pr.Get("/user/:userId", profiles.GetByUser)
	pr.Put("/experience", authMW, profiles.AddExperience)
	pr.Delete("/experience/:id", authMW, profiles.RemoveExperience)
	pr.Put("/education", authMW, profiles.AddEducation)
	pr.Delete("/education/:id", authMW, profiles.RemoveEducation)
	pr.Get("/github/:username", profiles.GithubRepos)

	po := v1.Group("/posts", authMW)
	po.Post("/", posts.Create)
	po.Get("/", posts.List)
	po.Get("/:id", posts.Get)
	po.Delete("/:id", posts.Delete)
}
