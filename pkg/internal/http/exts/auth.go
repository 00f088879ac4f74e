package exts

import (
	"net/url"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const LoginPath = "/auth/login/"

func GetCookieName() string {
	if name := viper.GetString("security.cookie_name"); len(name) > 0 {
		return name
	}
	return "yatube_session"
}

func readToken(c *fiber.Ctx) string {
	if token := c.Cookies(GetCookieName()); len(token) > 0 {
		return token
	}
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ContextMiddleware resolves the session and stores the user in locals, it never rejects a request.
func ContextMiddleware(c *fiber.Ctx) error {
	token := readToken(c)
	if len(token) == 0 {
		return c.Next()
	}

	id, err := services.ReadUserToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("Dropping unreadable session token...")
		return c.Next()
	}
	user, err := services.GetUserWithID(id)
	if err != nil {
		log.Debug().Err(err).Uint("id", id).Msg("Session points to a missing user...")
		return c.Next()
	}

	c.Locals("user", user)
	return c.Next()
}

// GetViewer returns the signed in user or nil.
func GetViewer(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(models.User); ok {
		return &user
	}
	return nil
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if GetViewer(c) == nil {
		return fiber.NewError(fiber.StatusUnauthorized)
	}
	return nil
}

func EnsureStaff(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	if !GetViewer(c).IsStaff {
		return fiber.NewError(fiber.StatusForbidden, "staff only")
	}
	return nil
}

// GetLoginURL points to the login page and brings the visitor back to next afterwards.
func GetLoginURL(next string) string {
	return LoginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// LoginRequired redirects anonymous visitors to the login page.
func LoginRequired(c *fiber.Ctx) error {
	if GetViewer(c) == nil {
		return c.Redirect(GetLoginURL(c.OriginalURL()))
	}
	return c.Next()
}

// SafeRedirectTarget keeps next only when it stays on this site.
func SafeRedirectTarget(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
