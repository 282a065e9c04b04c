package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// CredentialLimiter throttles the unauthenticated credential endpoints.
// Login and password change must share one instance, so a throttled login
// cannot be retried through the password-change route instead.
func CredentialLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
	})
}
