package middleware

import (
	"strings"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Authenticate extracts the bearer token from the Authorization header,
// verifies it and stores the decoded email in the request locals.
// A missing token is 401; a token that fails verification is 403.
func Authenticate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "Unauthorized access")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			return utils.Unauthorized(c, "Unauthorized access")
		}

		email, err := utils.ParseToken(parts[1], cfg)
		if err != nil {
			return utils.Forbidden(c, "Forbidden access")
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// RequireRole loads the authenticated user and rejects the request when
// the role does not match. Must run after Authenticate.
func RequireRole(db *gorm.DB, role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			return utils.Forbidden(c, "Forbidden access")
		}

		if user.Role != role {
			return utils.Forbidden(c, "Forbidden access")
		}

		return c.Next()
	}
}

func RequireAdmin(db *gorm.DB) fiber.Handler {
	return RequireRole(db, models.RoleAdmin)
}

func RequireTeacher(db *gorm.DB) fiber.Handler {
	return RequireRole(db, models.RoleTeacher)
}

// RequireSelf guards self-service endpoints parameterized by :email so a
// caller cannot query another identity's role flags.
func RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if c.Params("email") != email {
			return utils.Forbidden(c, "Unauthorized access")
		}
		return c.Next()
	}
}
