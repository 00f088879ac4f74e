package admin

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func adminListComment(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := database.C.Session(&gorm.Session{})
	if len(c.Query("author")) > 0 {
		author, err := services.GetUser(c.Query("author"))
		if err != nil {
			return exts.NotFoundOr(err)
		}
		tx = tx.Where("author_id = ?", author.ID).Session(&gorm.Session{})
	}

	count, err := services.CountComment(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListComment(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func adminDeleteComment(c *fiber.Ctx) error {
	if err := exts.EnsureStaff(c); err != nil {
		return err
	}

	id, err := c.ParamsInt("commentId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id, must be a positive number")
	}
	item, err := services.GetComment(uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if err := services.DeleteComment(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
