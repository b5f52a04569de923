package utils

import "github.com/gofiber/fiber/v2"

// Fail writes a JSON error body. Every error response carries a
// human-readable message field; detail, when present, echoes the
// underlying failure in an error field.
func Fail(c *fiber.Ctx, status int, message string, detail ...error) error {
	body := fiber.Map{"message": message}
	if len(detail) > 0 && detail[0] != nil {
		body["error"] = detail[0].Error()
	}
	return c.Status(status).JSON(body)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

func InternalServerError(c *fiber.Ctx, message string, err error) error {
	return Fail(c, fiber.StatusInternalServerError, message, err)
}
