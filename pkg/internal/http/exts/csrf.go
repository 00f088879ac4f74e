package exts

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

const (
	CSRFCookieName = "yatube_csrf"
	CSRFFormField  = "_csrf"
	csrfContextKey = "csrf"
)

// CSRFMiddleware guards the html forms with a double submit token.
// Api and media routes authenticate by cookie only and are skipped.
func CSRFMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFFormField,
		CookieName:     CSRFCookieName,
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     2 * time.Hour,
		ContextKey:     csrfContextKey,
		Next: func(c *fiber.Ctx) bool {
			path := c.Path()
			return strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/media")
		},
	})
}

// GetCSRFToken returns the token issued for the current request, empty when none.
func GetCSRFToken(c *fiber.Ctx) string {
	token, _ := c.Locals(csrfContextKey).(string)
	return token
}
