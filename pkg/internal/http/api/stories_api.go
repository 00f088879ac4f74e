package api

import (
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type storyRequest struct {
	Text  string `json:"text" validate:"required"`
	Group *uint  `json:"group"`
}

func createStory(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.GetViewer(c)

	var data storyRequest
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := exts.ValidateStruct(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item, err := services.NewPost(*user, models.Post{
		Text:    data.Text,
		GroupID: data.Group,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editStory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a positive number")
	}
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.GetViewer(c)

	var data storyRequest
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := exts.ValidateStruct(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	} else if item.AuthorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "only the author can edit this post")
	}

	item.Text = data.Text
	item.GroupID = data.Group

	item, err = services.EditPost(item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}
