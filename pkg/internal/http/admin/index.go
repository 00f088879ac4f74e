package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin")
	{
		admin.Get("/posts", adminListPost)
		admin.Delete("/posts/:postId", adminDeletePost)

		admin.Post("/groups", adminCreateGroup)
		admin.Put("/groups/:slug", adminEditGroup)

		admin.Get("/comments", adminListComment)
		admin.Delete("/comments/:commentId", adminDeleteComment)
	}
}
