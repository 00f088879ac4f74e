package web

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func profileFollow(c *fiber.Ctx) error {
	user := exts.GetViewer(c)

	author, err := services.GetUser(c.Params("username"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if _, err := services.FollowUser(*user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(getProfileLink(author.Username))
}

func profileUnfollow(c *fiber.Ctx) error {
	user := exts.GetViewer(c)

	author, err := services.GetUser(c.Params("username"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if _, err := services.UnfollowUser(*user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(getProfileLink(author.Username))
}
