package web

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

func aboutAuthor(c *fiber.Ctx) error {
	return exts.Render(c, "about/author", fiber.Map{"Title": "About the author"})
}

func aboutTech(c *fiber.Ctx) error {
	return exts.Render(c, "about/tech", fiber.Map{"Title": "Technologies"})
}
