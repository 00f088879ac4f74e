package http

import (
	nethttp "net/http"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/templates"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/web"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewTemplateEngine() *html.Engine {
	engine := html.NewFileSystem(nethttp.FS(templates.FS), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("02 Jan 2006")
	})
	engine.AddFunc("linebreaks", func(text string) []string {
		return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	})
	engine.AddFunc("truncate", func(text string, length int) string {
		runes := []rune(text)
		if len(runes) <= length {
			return text
		}
		return string(runes[:length]) + "…"
	})
	engine.AddFunc("fieldError", func(errs map[string]string, field string) string {
		return errs[field]
	})
	return engine
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Yatube",
		AppName:               "Yatube",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
		Views:                 NewTemplateEngine(),
		ErrorHandler:          exts.ErrorHandler,
	})

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.Logger,
	}))

	app.Use(exts.ContextMiddleware)
	app.Use(exts.CSRFMiddleware())

	app.Static("/media", services.GetMediaDir(), fiber.Static{
		MaxAge: int((24 * time.Hour).Seconds()),
	})

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")
	web.MapControllers(app)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return &App{app}
}

// Fiber exposes the underlying app to tests.
func (v *App) Fiber() *fiber.App {
	return v.app
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}
