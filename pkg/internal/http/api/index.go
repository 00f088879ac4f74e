package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPost)
			posts.Get("/:postId", getPost)
			posts.Post("/", createStory)
			posts.Put("/:postId", editStory)

			posts.Get("/:postId/comments", listComment)
			posts.Post("/:postId/comments", createComment)
		}

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroup)
			groups.Get("/:slug/posts", listGroupPost)
		}

		users := api.Group("/users/:name").Name("Users API")
		{
			users.Get("/posts", listUserPost)
			users.Post("/follow", followUser)
			users.Delete("/follow", unfollowUser)
		}

		api.Get("/feed", listFeed)
	}
}
