package api

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"visorhr.com/internal/api/middleware"
	"visorhr.com/internal/config"
	"visorhr.com/internal/domain"
	"visorhr.com/internal/session"
)

// AuthHandler serves the /accounts endpoints: registration, session
// login/logout, and the admin/existence probes.
type AuthHandler struct {
	accounts   domain.AccountService
	sessions   session.Store
	cookieName string
	sessionTTL time.Duration
}

func NewAuthHandler(accounts domain.AccountService, sessions session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
		sessionTTL: cfg.Session.TTL(),
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. The first account ever registered is promoted
// to superadmin.
// POST /accounts/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body.")
	}

	user, err := h.accounts.Register(context.Background(), req.Username, req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	message := "User registered."
	if user.IsSuperuser {
		message = "User registered (promoted to superadmin)."
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"user": fiber.Map{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"is_superuser": user.IsSuperuser,
			"is_staff":     user.IsStaff,
		},
	})
}

// Login verifies credentials and establishes a cookie session.
// POST /accounts/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body.")
	}

	user, err := h.accounts.Authenticate(context.Background(), req.Username, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	token, err := h.sessions.Create(context.Background(), user.ID, h.sessionTTL)
	if err != nil {
		return handleError(c, domain.NewInternalError("Failed to create session", err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged in.",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout terminates the current session. Succeeds with or without one.
// POST /accounts/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		_ = h.sessions.Delete(context.Background(), token)
	}
	c.ClearCookie(h.cookieName)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out.",
	})
}

// ValidateAdmin reports whether the session user holds the admin role.
// POST /accounts/validate-admin
func (h *AuthHandler) ValidateAdmin(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	isAdmin := h.accounts.IsAdmin(user)
	message := "User is not an administrator."
	if isAdmin {
		message = "User is an administrator."
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  message,
		"is_admin": isAdmin,
	})
}

// CheckUserExists reports whether a username is already taken.
// POST /accounts/check-user-exists
func (h *AuthHandler) CheckUserExists(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid JSON body.")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return respondError(c, fiber.StatusBadRequest, "Username is required.")
	}

	exists, err := h.accounts.UserExists(context.Background(), username)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"exists":  exists,
	})
}
