package http

import (
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/testkit"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	testkit.Setup(t)
	return NewServer().Fiber()
}

func sessionOf(t *testing.T, user models.User) string {
	token, err := services.SignUserToken(user)
	require.NoError(t, err)
	return exts.GetCookieName() + "=" + token
}

func doRequest(t *testing.T, app *fiber.App, req *nethttp.Request, session string) (*nethttp.Response, string) {
	t.Helper()
	if len(session) > 0 {
		req.Header.Set("Cookie", session)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, path string, session string) (*nethttp.Response, string) {
	return doRequest(t, app, httptest.NewRequest(fiber.MethodGet, path, nil), session)
}

// csrfToken fetches a page to obtain a fresh form token from the cookie.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, _ := get(t, app, "/auth/login/", "")
	for _, cookie := range resp.Cookies() {
		if cookie.Name == exts.CSRFCookieName {
			return cookie.Value
		}
	}
	require.Fail(t, "no csrf cookie issued")
	return ""
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values, cookies string) (*nethttp.Response, string) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, req, cookies)
}

// submit posts the form the way a browser would, token and cookie included.
func submit(t *testing.T, app *fiber.App, path string, values url.Values, session string) (*nethttp.Response, string) {
	token := csrfToken(t, app)
	withToken := url.Values{exts.CSRFFormField: {token}}
	for key, value := range values {
		withToken[key] = value
	}

	cookies := exts.CSRFCookieName + "=" + token
	if len(session) > 0 {
		cookies = session + "; " + cookies
	}
	return postForm(t, app, path, withToken, cookies)
}

func countCards(body string) int {
	return strings.Count(body, `class="post"`)
}

func TestLoginRequiredRedirects(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	post := testkit.NewPost(t, author, nil, "Hello")

	paths := []string{
		"/create/",
		"/follow/",
		fmt.Sprintf("/posts/%d/edit/", post.ID),
		"/profile/leo/follow/",
		"/profile/leo/unfollow/",
	}
	for _, path := range paths {
		resp, _ := get(t, app, path, "")
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/auth/login/?next="+path, resp.Header.Get(fiber.HeaderLocation), path)
	}

	resp, _ := submit(t, app, fmt.Sprintf("/posts/%d/comment/", post.ID), url.Values{"text": {"hi"}}, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/auth/login/?next=/posts/%d/comment/", post.ID), resp.Header.Get(fiber.HeaderLocation))
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	group := testkit.NewGroup(t, "cats")
	post := testkit.NewPost(t, author, &group, "A post about cats")

	for _, path := range []string{
		"/",
		"/group/cats/",
		"/profile/leo/",
		fmt.Sprintf("/posts/%d/", post.ID),
		"/about/author/",
		"/about/tech/",
		"/auth/login/",
		"/auth/signup/",
	} {
		resp, _ := get(t, app, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}

	_, body := get(t, app, fmt.Sprintf("/posts/%d/", post.ID), "")
	assert.Contains(t, body, "A post about cats")
	assert.Contains(t, body, `<span class="post-count">1</span>`)
}

func TestNotFoundPages(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/unexisting_page/",
		"/group/missing/",
		"/profile/ghost/",
		"/posts/9999/",
		"/posts/abc/",
	} {
		resp, body := get(t, app, path, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.Contains(t, body, "Page not found", path)
	}
}

func TestCreatePost(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	group := testkit.NewGroup(t, "cats")
	session := sessionOf(t, author)

	resp, body := get(t, app, "/create/", session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="text"`)
	assert.Contains(t, body, "Group cats")

	resp, _ = submit(t, app, "/create/", url.Values{
		"text":  {"A brand new post"},
		"group": {fmt.Sprint(group.ID)},
	}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile/leo/", resp.Header.Get(fiber.HeaderLocation))

	var post models.Post
	require.NoError(t, database.C.Where("text = ?", "A brand new post").First(&post).Error)
	assert.Equal(t, author.ID, post.AuthorID)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, group.ID, *post.GroupID)
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	session := sessionOf(t, author)

	resp, body := submit(t, app, "/create/", url.Values{"text": {""}}, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")

	resp, body = submit(t, app, "/create/", url.Values{"text": {"    "}}, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")

	resp, body = submit(t, app, "/create/", url.Values{"text": {"Fine"}, "group": {"404"}}, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Select a valid choice.")

	var count int64
	require.NoError(t, database.C.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditPostByAuthor(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	post := testkit.NewPost(t, author, nil, "Before edit")
	session := sessionOf(t, author)
	path := fmt.Sprintf("/posts/%d/edit/", post.ID)

	resp, body := get(t, app, path, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Before edit")

	resp, _ = submit(t, app, path, url.Values{"text": {"After edit"}}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), resp.Header.Get(fiber.HeaderLocation))

	saved, err := services.GetPost(database.C, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After edit", saved.Text)
	assert.Equal(t, author.ID, saved.AuthorID)

	resp, body = submit(t, app, path, url.Values{"text": {" \t\r\n "}}, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")

	saved, err = services.GetPost(database.C, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After edit", saved.Text)
}

func TestEditPostByStranger(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	stranger := testkit.NewUser(t, "mallory")
	post := testkit.NewPost(t, author, nil, "Untouchable")
	session := sessionOf(t, stranger)
	path := fmt.Sprintf("/posts/%d/edit/", post.ID)

	resp, _ := get(t, app, path, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), resp.Header.Get(fiber.HeaderLocation))

	resp, _ = submit(t, app, path, url.Values{"text": {"Hacked"}}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), resp.Header.Get(fiber.HeaderLocation))

	saved, err := services.GetPost(database.C, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Untouchable", saved.Text)
}

func TestAddComment(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	reader := testkit.NewUser(t, "reader")
	post := testkit.NewPost(t, author, nil, "Comment me")
	session := sessionOf(t, reader)
	path := fmt.Sprintf("/posts/%d/comment/", post.ID)

	resp, _ := submit(t, app, path, url.Values{"text": {"Nice post"}}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d/", post.ID), resp.Header.Get(fiber.HeaderLocation))

	resp, _ = submit(t, app, path, url.Values{"text": {"   "}}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	comments, err := services.ListPostComment(post)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Nice post", comments[0].Text)
	assert.Equal(t, reader.ID, comments[0].AuthorID)

	_, body := get(t, app, fmt.Sprintf("/posts/%d/", post.ID), "")
	assert.Contains(t, body, "Nice post")
}

func TestFollowFlow(t *testing.T) {
	app := newTestApp(t)
	reader := testkit.NewUser(t, "reader")
	writer := testkit.NewUser(t, "writer")
	stranger := testkit.NewUser(t, "stranger")
	post := testkit.NewPost(t, writer, nil, "Only for followers")
	session := sessionOf(t, reader)

	countFollow := func() int64 {
		var count int64
		require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
		return count
	}

	for _, path := range []string{"/profile/writer/follow/", "/profile/writer/follow"} {
		resp, _ := get(t, app, path, session)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/profile/writer/", resp.Header.Get(fiber.HeaderLocation))
	}
	assert.EqualValues(t, 1, countFollow())

	get(t, app, "/profile/reader/follow/", session)
	assert.EqualValues(t, 1, countFollow())

	_, body := get(t, app, "/profile/writer/", session)
	assert.Contains(t, body, `class="unfollow"`)

	_, body = get(t, app, "/follow/", session)
	assert.Contains(t, body, "Only for followers")
	_, body = get(t, app, "/follow/", sessionOf(t, stranger))
	assert.NotContains(t, body, "Only for followers")
	assert.Equal(t, 0, countCards(body))

	resp, _ := get(t, app, "/profile/writer/unfollow/", session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.EqualValues(t, 0, countFollow())

	_, body = get(t, app, "/follow/", session)
	assert.NotContains(t, body, fmt.Sprintf("/posts/%d/", post.ID))

	resp, _ = get(t, app, "/profile/ghost/follow/", session)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListingsPaginate(t *testing.T) {
	app := newTestApp(t)
	reader := testkit.NewUser(t, "reader")
	writer := testkit.NewUser(t, "writer")
	group := testkit.NewGroup(t, "cats")
	testkit.NewPosts(t, writer, &group, 13)
	_, err := services.FollowUser(reader, writer)
	require.NoError(t, err)
	session := sessionOf(t, reader)

	for _, path := range []string{"/", "/group/cats/", "/profile/writer/", "/follow/"} {
		_, body := get(t, app, path, session)
		assert.Equal(t, 10, countCards(body), path)

		_, body = get(t, app, path+"?page=2", session)
		assert.Equal(t, 3, countCards(body), path)

		_, body = get(t, app, path+"?page=42", session)
		assert.Equal(t, 3, countCards(body), path)
	}
}

func TestIndexPageCache(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	testkit.NewPost(t, author, nil, "Cached post")

	resp, first := get(t, app, "/", "")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Contains(t, first, "Cached post")

	testkit.NewPost(t, author, nil, "Fresh post")

	resp, second := get(t, app, "/", "")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, first, second)
	assert.NotContains(t, second, "Fresh post")

	require.NoError(t, services.ClearIndexPageCache())

	_, third := get(t, app, "/", "")
	assert.Contains(t, third, "Fresh post")
}

func TestIndexPageCacheSeparatesViewers(t *testing.T) {
	app := newTestApp(t)
	user := testkit.NewUser(t, "leo")

	_, anonymous := get(t, app, "/", "")
	assert.Contains(t, anonymous, "Log in")

	_, signed := get(t, app, "/", sessionOf(t, user))
	assert.Contains(t, signed, "Log out")
}

func TestSignupAndLogin(t *testing.T) {
	app := newTestApp(t)

	resp, _ := submit(t, app, "/auth/signup/", url.Values{
		"username":         {"newbie"},
		"nick":             {"Newbie"},
		"password":         {"long enough"},
		"password_confirm": {"long enough"},
	}, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Cookies())

	resp, body := submit(t, app, "/auth/signup/", url.Values{
		"username":         {"other"},
		"password":         {"long enough"},
		"password_confirm": {"different"},
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The two values do not match.")

	resp, body = submit(t, app, "/auth/login/", url.Values{
		"username": {"newbie"},
		"password": {"wrong password"},
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "invalid username or password")

	resp, _ = submit(t, app, "/auth/login/?next=/follow/", url.Values{
		"username": {"newbie"},
		"password": {"long enough"},
	}, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/follow/", resp.Header.Get(fiber.HeaderLocation))

	var session string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == exts.GetCookieName() {
			session = cookie.Name + "=" + cookie.Value
		}
	}
	require.NotEmpty(t, session)

	resp, _ = get(t, app, "/follow/", session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = submit(t, app, "/auth/login/", url.Values{
		"username": {"newbie"},
		"password": {"long enough"},
		"next":     {"//evil.example.com"},
	}, "")
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestFormsRequireCSRFToken(t *testing.T) {
	app := newTestApp(t)
	author := testkit.NewUser(t, "leo")
	post := testkit.NewPost(t, author, nil, "Guarded")
	session := sessionOf(t, author)

	resp, body := get(t, app, "/create/", session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="_csrf"`)

	resp, _ = postForm(t, app, "/create/", url.Values{"text": {"No token"}}, session)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	token := csrfToken(t, app)
	forged := url.Values{"text": {"Forged"}, exts.CSRFFormField: {"not-the-cookie"}}
	resp, _ = postForm(t, app, fmt.Sprintf("/posts/%d/comment/", post.ID), forged,
		session+"; "+exts.CSRFCookieName+"="+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	require.NoError(t, database.C.Model(&models.Post{}).Where("text = ?", "No token").Count(&count).Error)
	assert.Zero(t, count)
	comments, err := services.ListPostComment(post)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestLogoutNeedsPost(t *testing.T) {
	app := newTestApp(t)
	user := testkit.NewUser(t, "leo")
	session := sessionOf(t, user)

	resp, body := get(t, app, "/auth/logout/", session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/auth/logout/"`)
	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, exts.GetCookieName(), cookie.Name)
	}

	resp, _ = submit(t, app, "/auth/logout/", url.Values{}, session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == exts.GetCookieName() {
			cleared = len(cookie.Value) == 0
		}
	}
	assert.True(t, cleared)
}
