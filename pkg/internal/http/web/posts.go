package web

import (
	"fmt"
	"strconv"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type postForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group" validate:"omitempty,number"`
}

type commentForm struct {
	Text string `form:"text" validate:"required,max=4096"`
}

func getPostLink(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func getProfileLink(username string) string {
	return fmt.Sprintf("/profile/%s/", username)
}

func index(c *fiber.Ctx) error {
	page, err := queries.GetIndexPage(c.Query("page"), c.Query("q"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Render(c, "posts/index", fiber.Map{
		"Title": "Latest posts",
		"Page":  page.Page,
		"Query": page.Query,
	})
}

func groupPosts(c *fiber.Ctx) error {
	page, err := queries.GetGroupPage(c.Params("slug"), c.Query("page"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return exts.Render(c, "posts/group_list", fiber.Map{
		"Title": page.Group.String(),
		"Group": page.Group,
		"Page":  page.Page,
	})
}

func profile(c *fiber.Ctx) error {
	page, err := queries.GetProfilePage(exts.GetViewer(c), c.Params("username"), c.Query("page"))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return exts.Render(c, "posts/profile", fiber.Map{
		"Title":   "Posts of " + page.Author.DisplayName(),
		"Profile": page,
		"Page":    page.Page,
	})
}

func followIndex(c *fiber.Ctx) error {
	page, err := queries.GetFollowPage(*exts.GetViewer(c), c.Query("page"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Render(c, "posts/follow", fiber.Map{
		"Title": "Following",
		"Page":  page.Page,
	})
}

func postDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	page, err := queries.GetPostDetailPage(exts.GetViewer(c), uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	return exts.Render(c, "posts/post_detail", fiber.Map{
		"Title":  "Post " + page.Post.String(),
		"Detail": page,
	})
}

func renderPostForm(c *fiber.Ctx, form postForm, errs map[string]string, post *models.Post) error {
	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return exts.Render(c, "posts/create_post", fiber.Map{
		"Title":  lo.Ternary(post != nil, "Edit post", "New post"),
		"IsEdit": post != nil,
		"Post":   post,
		"Form":   form,
		"Groups": groups,
		"Errors": errs,
	})
}

// applyPostForm copies the validated form into item, saving an uploaded image when one was sent.
func applyPostForm(c *fiber.Ctx, form postForm, item models.Post) (models.Post, map[string]string) {
	item.Text = strings.TrimSpace(form.Text)
	if len(form.Group) > 0 {
		group, _ := strconv.Atoi(form.Group)
		if _, err := services.GetGroupWithID(uint(group)); err != nil {
			return item, map[string]string{"group": "Select a valid choice."}
		}
		item.GroupID = lo.ToPtr(uint(group))
	} else {
		item.GroupID = nil
	}

	// Urlencoded bodies and forms without a file keep the current image.
	file, err := c.FormFile("image")
	if err != nil {
		return item, nil
	}
	path, err := services.SavePostImage(file)
	if err != nil {
		return item, map[string]string{"image": err.Error()}
	}
	item.Image = &path

	return item, nil
}

func createPostForm(c *fiber.Ctx) error {
	return renderPostForm(c, postForm{}, nil, nil)
}

func createPost(c *fiber.Ctx) error {
	user := exts.GetViewer(c)

	var form postForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	form.Text = strings.TrimSpace(form.Text)
	if errs := exts.ValidateForm(form); errs != nil {
		return renderPostForm(c, form, errs, nil)
	}

	item, errs := applyPostForm(c, form, models.Post{})
	if errs != nil {
		return renderPostForm(c, form, errs, nil)
	}

	if _, err := services.NewPost(*user, item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(getProfileLink(user.Username))
}

// authorRequired loads the post into locals and sends everyone but its author back to the post page.
func authorRequired(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	if user := exts.GetViewer(c); user == nil || user.ID != item.AuthorID {
		return c.Redirect(getPostLink(item.ID))
	}

	c.Locals("post", item)
	return c.Next()
}

func editPostForm(c *fiber.Ctx) error {
	item := c.Locals("post").(models.Post)

	form := postForm{Text: item.Text}
	if item.GroupID != nil {
		form.Group = strconv.Itoa(int(*item.GroupID))
	}
	return renderPostForm(c, form, nil, &item)
}

func editPost(c *fiber.Ctx) error {
	item := c.Locals("post").(models.Post)

	var form postForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	form.Text = strings.TrimSpace(form.Text)
	if errs := exts.ValidateForm(form); errs != nil {
		return renderPostForm(c, form, errs, &item)
	}

	updated, errs := applyPostForm(c, form, item)
	if errs != nil {
		return renderPostForm(c, form, errs, &item)
	}

	if _, err := services.EditPost(updated); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(getPostLink(item.ID))
}

func addComment(c *fiber.Ctx) error {
	user := exts.GetViewer(c)

	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return exts.NotFoundOr(err)
	}

	var form commentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect(getPostLink(post.ID))
	}
	form.Text = strings.TrimSpace(form.Text)
	if errs := exts.ValidateForm(form); errs != nil {
		return c.Redirect(getPostLink(post.ID))
	}

	if _, err := services.NewComment(*user, post, form.Text); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(getPostLink(post.ID))
}
