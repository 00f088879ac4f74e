package web

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

// MapControllers registers the html pages. Routing is not strict so every path
// below also answers with a trailing slash.
func MapControllers(app *fiber.App) {
	app.Get("/", exts.CacheIndexPage, index).Name("index")
	app.Get("/group/:slug", groupPosts).Name("group_list")
	app.Get("/follow", exts.LoginRequired, followIndex).Name("follow_index")

	app.Get("/create", exts.LoginRequired, createPostForm).Name("post_create")
	app.Post("/create", exts.LoginRequired, createPost)

	posts := app.Group("/posts/:postId")
	{
		posts.Get("/", postDetail).Name("post_detail")
		posts.Get("/edit", exts.LoginRequired, authorRequired, editPostForm).Name("post_edit")
		posts.Post("/edit", exts.LoginRequired, authorRequired, editPost)
		posts.Post("/comment", exts.LoginRequired, addComment).Name("add_comment")
	}

	profiles := app.Group("/profile/:username")
	{
		profiles.Get("/", profile).Name("profile")
		profiles.Get("/follow", exts.LoginRequired, profileFollow).Name("profile_follow")
		profiles.Get("/unfollow", exts.LoginRequired, profileUnfollow).Name("profile_unfollow")
	}

	auth := app.Group("/auth")
	{
		auth.Get("/signup", signupPage).Name("signup")
		auth.Post("/signup", signup)
		auth.Get("/login", loginPage).Name("login")
		auth.Post("/login", login)
		auth.Get("/logout", logoutPage).Name("logout")
		auth.Post("/logout", logout)
	}

	about := app.Group("/about")
	{
		about.Get("/author", aboutAuthor).Name("author")
		about.Get("/tech", aboutTech).Name("tech")
	}
}
