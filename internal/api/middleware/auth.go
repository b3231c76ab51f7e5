package middleware

import (
	"context"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"visorhr.com/internal/auth"
	"visorhr.com/internal/model"
	"visorhr.com/internal/session"
)

const localUserKey = "currentUser"

// CurrentUser returns the authenticated user stored by SessionAuth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localUserKey).(*model.User)
	return user
}

// SessionAuth resolves the session cookie to a user and checks the request
// against the casbin policy before letting it through.
func SessionAuth(db *gorm.DB, sessions session.Store, enforcer *casbin.Enforcer, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return unauthorized(c)
		}

		userID, err := sessions.Get(context.Background(), token)
		if err != nil {
			return unauthorized(c)
		}

		var user model.User
		if err := db.First(&user, userID).Error; err != nil {
			return unauthorized(c)
		}
		c.Locals(localUserKey, &user)

		// non-strict routing dispatches trailing-slash variants, so the
		// policy object must see the canonical path
		obj := c.Path()
		if len(obj) > 1 {
			obj = strings.TrimRight(obj, "/")
		}

		permit, err := enforcer.Enforce(auth.Subject(user.ID), obj, c.Method())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Permission check failed.",
			})
		}
		if !permit {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Permission denied.",
			})
		}

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Authentication required.",
	})
}
