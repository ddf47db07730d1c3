package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDMiddleware memasang X-Request-ID (pakai yang dikirim klien kalau
// ada) dan membatasi umur request lewat user context; handler meneruskan
// context ini ke GORM supaya query ikut berhenti saat waktunya habis
// (selaras dengan statement_timeout di DSN).
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
