package http

import (
	"regexp"
	"strings"
	"time"

	"resumely/internal/adapter/repository"
	"resumely/internal/auth"
	"resumely/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasLower = regexp.MustCompile(`[a-z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(8, 128),
		validation.Match(hasUpper).Error("must contain at least one uppercase letter"),
		validation.Match(hasLower).Error("must contain at least one lowercase letter"),
		validation.Match(hasDigit).Error("must contain at least one number"),
	}
}

type AuthHandler struct {
	users      *repository.UsersRepo
	audit      *repository.AuditRepo
	tokens     *auth.TokenIssuer
	bcryptCost int
	log        *zap.Logger
}

func NewAuthHandler(users *repository.UsersRepo, audit *repository.AuditRepo, tokens *auth.TokenIssuer, bcryptCost int, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, audit: audit, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r registerReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, 255)),
		validation.Field(&r.Password, passwordRules()...),
		validation.Field(&r.Name, validation.Length(0, 100)),
	)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid payload", "VALIDATION_ERROR")
	}
	if err := req.Validate(); err != nil {
		return failValidation(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.users.GetByEmail(c.Context(), email); err == nil {
		return fail(c, fiber.StatusConflict, "An account with this email already exists", "EMAIL_EXISTS")
	} else if err != repository.ErrNotFound {
		h.log.Error("register lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create account", "REGISTER_ERROR")
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create account", "REGISTER_ERROR")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		h.log.Error("user insert failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create account", "REGISTER_ERROR")
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create account", "REGISTER_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID:    &user.ID,
		Action:    "USER_REGISTER",
		IPAddress: c.IP(),
		CreatedAt: now,
	})

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Account created successfully",
		"data": fiber.Map{
			"user":  userView(user),
			"token": token,
		},
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid payload", "VALIDATION_ERROR")
	}
	if err := req.Validate(); err != nil {
		return failValidation(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(c.Context(), email)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
		}
		h.log.Error("login lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_ERROR")
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return fail(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
	}

	if err := h.users.TouchLastLogin(c.Context(), user.ID); err != nil {
		h.log.Warn("last_login update failed", zap.Error(err))
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID:    &user.ID,
		Action:    "USER_LOGIN",
		IPAddress: c.IP(),
		CreatedAt: time.Now().UTC(),
	})

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"user":  userView(user),
			"token": token,
		},
	})
}

// Logout is stateless: tokens are not tracked server-side, so logging out is
// the client discarding its token. The endpoint exists for the audit trail.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	uid := currentUserID(c)
	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID:    &uid,
		Action:    "USER_LOGOUT",
		IPAddress: c.IP(),
		CreatedAt: time.Now().UTC(),
	})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND")
		}
		h.log.Error("me lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch user", "FETCH_ERROR")
	}
	return ok(c, fiber.StatusOK, fiber.Map{"data": fiber.Map{"user": userView(user)}})
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r changePasswordReq) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, passwordRules()...),
	); err != nil {
		return err
	}
	if r.NewPassword == r.CurrentPassword {
		return validation.Errors{"newPassword": validation.NewError(
			"validation_same_password", "must be different from current password")}
	}
	return nil
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid payload", "VALIDATION_ERROR")
	}
	if err := req.Validate(); err != nil {
		return failValidation(c, err)
	}

	user, err := h.users.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND")
		}
		h.log.Error("password change lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to change password", "PASSWORD_CHANGE_ERROR")
	}

	if !auth.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		return fail(c, fiber.StatusUnauthorized, "Current password is incorrect", "INVALID_PASSWORD")
	}

	hash, err := auth.HashPassword(req.NewPassword, h.bcryptCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to change password", "PASSWORD_CHANGE_ERROR")
	}
	if err := h.users.UpdatePassword(c.Context(), user.ID, hash); err != nil {
		h.log.Error("password update failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to change password", "PASSWORD_CHANGE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID:    &user.ID,
		Action:    "PASSWORD_CHANGE",
		IPAddress: c.IP(),
		CreatedAt: time.Now().UTC(),
	})

	return ok(c, fiber.StatusOK, fiber.Map{"message": "Password changed successfully. Please login again."})
}

func userView(u *domain.User) fiber.Map {
	return fiber.Map{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}
}
