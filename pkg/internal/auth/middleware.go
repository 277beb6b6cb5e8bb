package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumepress/plume/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

const CookieAuthKey = "plume_session"

// ContextMiddleware resolves the requester identity for every request.
// Requests without a readable token simply stay anonymous.
func ContextMiddleware(c *fiber.Ctx) error {
	if tokenString, ok := RetrieveToken(c.Get(fiber.HeaderAuthorization), c.Cookies(CookieAuthKey)); ok {
		if claims, err := ReadToken(tokenString); err == nil {
			user, err := services.EnsureAccount(claims.Subject, claims.Nick, claims.Avatar)
			if err != nil {
				log.Warn().Err(err).Str("name", claims.Subject).Msg("An error occurred when syncing account...")
			} else {
				c.Locals("user", user)
			}
		}
	}

	return c.Next()
}
