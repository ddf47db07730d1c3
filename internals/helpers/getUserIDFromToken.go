package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case int64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case float64:
		// klaim JWT berupa angka selalu didecode sebagai float64
		id := int64(t)
		if id <= 0 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}
