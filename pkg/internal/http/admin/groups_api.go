package admin

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type groupRequest struct {
	Slug        string `json:"slug" validate:"required,lowercase,max=255"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

func adminCreateGroup(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	var data groupRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminEditGroup(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	var data groupRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}
