package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL, authMiddleware)
	{
		admin.Get("/groups", adminListGroup)
		admin.Post("/groups", adminNewGroup)
		admin.Put("/groups/:groupId", adminEditGroup)
		admin.Delete("/groups/:groupId", adminDeleteGroup)
	}
}

// Group management belongs to the operators, the public surface only
// reads groups. The shared secret comes from the deployment settings.
func authMiddleware(c *fiber.Ctx) error {
	secret := viper.GetString("security.admin_secret")
	if len(secret) == 0 || c.Get("X-Admin-Secret") != secret {
		return fiber.NewError(fiber.StatusForbidden, "admin secret mismatch")
	}

	return c.Next()
}
