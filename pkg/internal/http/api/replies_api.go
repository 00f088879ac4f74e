package api

import (
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a positive number")
	}

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	items, err := services.ListPostComment(post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": len(items),
		"data":  items,
	})
}

func createComment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a positive number")
	}
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.GetViewer(c)

	var data struct {
		Text string `json:"text" validate:"required,max=4096"`
	}
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := exts.ValidateStruct(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	item, err := services.NewComment(*user, post, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}
