package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
)

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a positive number")
	}

	page, err := queries.GetPostDetailPage(exts.GetViewer(c), uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return c.JSON(fiber.Map{
		"post":       page.Post,
		"comments":   page.Comments,
		"post_count": page.PostCount,
		"is_author":  page.IsAuthor,
	})
}

func listPost(c *fiber.Ctx) error {
	page, err := queries.GetIndexPage(c.Query("page"), c.Query("q"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page.Page)
}

func listGroupPost(c *fiber.Ctx) error {
	page, err := queries.GetGroupPage(c.Params("slug"), c.Query("page"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return c.JSON(page.Page)
}
