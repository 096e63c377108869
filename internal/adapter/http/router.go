package http

import (
	"resumely/internal/adapter/repository"
	"resumely/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Register mounts all API routes on the app. Everything under /api/resumes
// and the account endpoints require a valid token.
func Register(app *fiber.App, authH *AuthHandler, resumeH *ResumeHandler, tokens *auth.TokenIssuer, users *repository.UsersRepo) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	protected := AuthRequired(tokens, users)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authH.Register)
	authGroup.Post("/login", authH.Login)
	authGroup.Post("/logout", protected, authH.Logout)
	authGroup.Get("/me", protected, authH.Me)
	authGroup.Put("/password", protected, authH.ChangePassword)

	resumes := api.Group("/resumes", protected)
	resumes.Get("/", resumeH.List)
	resumes.Post("/", resumeH.Create)
	resumes.Get("/:id", resumeH.Get)
	resumes.Put("/:id", resumeH.Update)
	resumes.Delete("/:id", resumeH.Delete)
	resumes.Post("/:id/default", resumeH.SetDefault)
	resumes.Post("/:id/duplicate", resumeH.Duplicate)
	resumes.Post("/:id/export", resumeH.Export)
}
