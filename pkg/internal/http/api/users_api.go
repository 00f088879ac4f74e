package api

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
)

func listUserPost(c *fiber.Ctx) error {
	page, err := queries.GetProfilePage(exts.GetViewer(c), c.Params("name"), c.Query("page"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return c.JSON(fiber.Map{
		"count":           page.Page.Count,
		"page":            page.Page.Number,
		"pages":           page.Page.NumPages,
		"data":            page.Page.Items,
		"author":          page.Author,
		"following":       page.Following,
		"follower_count":  page.FollowerCount,
		"following_count": page.FollowingCount,
	})
}

func listFeed(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	page, err := queries.GetFollowPage(*exts.GetViewer(c), c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page.Page)
}

func followUser(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.GetViewer(c)

	author, err := services.GetUser(c.Params("name"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if _, err := services.FollowUser(*user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"following": user.ID != author.ID})
}

func unfollowUser(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := exts.GetViewer(c)

	author, err := services.GetUser(c.Params("name"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if _, err := services.UnfollowUser(*user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"following": false})
}
