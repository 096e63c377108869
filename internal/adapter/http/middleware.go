package http

import (
	"strings"

	"resumely/internal/adapter/repository"
	"resumely/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localUserID    = "userID"
	localUserEmail = "userEmail"
)

// AuthRequired verifies the bearer token (or the token cookie set at login)
// and resolves the account before any protected handler runs. Requests from
// deactivated or deleted accounts are rejected even if the token is valid.
func AuthRequired(tokens *auth.TokenIssuer, users *repository.UsersRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			raw = c.Cookies("token")
		}
		if raw == "" {
			return fail(c, fiber.StatusUnauthorized, "Authentication required", "NO_TOKEN")
		}

		userID, email, err := tokens.Verify(raw)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Invalid or expired token", "INVALID_TOKEN")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			if err == repository.ErrNotFound {
				return fail(c, fiber.StatusUnauthorized, "User no longer exists", "USER_NOT_FOUND")
			}
			return fail(c, fiber.StatusInternalServerError, "Authentication failed", "AUTH_ERROR")
		}

		c.Locals(localUserID, user.ID)
		c.Locals(localUserEmail, email)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localUserID).(uuid.UUID)
	return id
}

func currentUserEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localUserEmail).(string)
	return email
}
