package auth

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// RedirectToLogin sends an anonymous requester to the external login
// interface, carrying the original URL so it can return afterwards.
func RedirectToLogin(c *fiber.Ctx) error {
	endpoint := viper.GetString("security.login_endpoint")
	return c.Redirect(fmt.Sprintf("%s?next=%s", endpoint, url.QueryEscape(c.OriginalURL())))
}
