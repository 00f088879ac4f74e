package web

import (
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type signupForm struct {
	Username        string `form:"username" validate:"required,alphanum,max=150"`
	Nick            string `form:"nick" validate:"max=150"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

func setSession(c *fiber.Ctx, user models.User) error {
	token, err := services.SignUserToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     exts.GetCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(services.GetTokenTTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func renderSignup(c *fiber.Ctx, form signupForm, errs map[string]string) error {
	form.Password, form.PasswordConfirm = "", ""
	return exts.Render(c, "auth/signup", fiber.Map{
		"Title":  "Sign up",
		"Form":   form,
		"Errors": errs,
	})
}

func signupPage(c *fiber.Ctx) error {
	return renderSignup(c, signupForm{}, nil)
}

func signup(c *fiber.Ctx) error {
	var form signupForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if errs := exts.ValidateForm(form); errs != nil {
		return renderSignup(c, form, errs)
	}

	user, err := services.NewUser(form.Username, form.Nick, form.Password)
	if err != nil {
		return renderSignup(c, form, map[string]string{"username": err.Error()})
	}

	if err := setSession(c, user); err != nil {
		return err
	}
	return c.Redirect("/")
}

func renderLogin(c *fiber.Ctx, form loginForm, errs map[string]string) error {
	form.Password = ""
	return exts.Render(c, "auth/login", fiber.Map{
		"Title":  "Log in",
		"Form":   form,
		"Errors": errs,
	})
}

func loginPage(c *fiber.Ctx) error {
	return renderLogin(c, loginForm{Next: c.Query("next")}, nil)
}

func login(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if len(form.Next) == 0 {
		form.Next = c.Query("next")
	}
	if errs := exts.ValidateForm(form); errs != nil {
		return renderLogin(c, form, errs)
	}

	user, err := services.AuthenticateUser(form.Username, form.Password)
	if err != nil {
		return renderLogin(c, form, map[string]string{"__all__": err.Error()})
	}

	if err := setSession(c, user); err != nil {
		return err
	}
	return c.Redirect(exts.SafeRedirectTarget(form.Next))
}

func logoutPage(c *fiber.Ctx) error {
	if exts.GetViewer(c) == nil {
		return c.Redirect("/")
	}
	return exts.Render(c, "auth/logout", fiber.Map{"Title": "Log out"})
}

func logout(c *fiber.Ctx) error {
	c.ClearCookie(exts.GetCookieName())
	return c.Redirect("/")
}
