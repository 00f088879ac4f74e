package exts

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const MainLayout = "layouts/main"

// Render fills the shared page bindings and renders the template inside the main layout.
func Render(c *fiber.Ctx, name string, binding fiber.Map) error {
	if binding == nil {
		binding = fiber.Map{}
	}
	binding["Viewer"] = GetViewer(c)
	binding["Path"] = c.Path()
	binding["CSRF"] = GetCSRFToken(c)
	if _, ok := binding["Title"]; !ok {
		binding["Title"] = "Yatube"
	}

	c.Type("html", "utf-8")
	return c.Render(name, binding, MainLayout)
}

// NotFoundOr turns record not found errors into 404 and anything else into 500.
func NotFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler answers api routes in plain text and every other route with an error page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return fiber.DefaultErrorHandler(c, err)
	}

	var name string
	switch status {
	case fiber.StatusNotFound:
		name = "core/404"
	case fiber.StatusForbidden:
		name = "core/403"
	default:
		name = "core/500"
	}

	c.Status(status)
	if rerr := Render(c, name, fiber.Map{"Title": "Error", "Status": status}); rerr != nil {
		log.Error().Err(rerr).Msg("Unable to render error page...")
		return c.Status(status).SendString(err.Error())
	}
	return nil
}
