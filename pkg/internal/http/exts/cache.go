package exts

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// CacheIndexPage serves a recent rendering of the page when there is one
// and keeps successful renderings for the index window.
func CacheIndexPage(c *fiber.Ctx) error {
	var viewer uint
	if user := GetViewer(c); user != nil {
		viewer = user.ID
	}
	key := services.GetIndexPageCacheKey(c.OriginalURL(), viewer)

	if page, ok := services.GetCachedPage(key); ok {
		c.Set(fiber.HeaderContentType, page.ContentType)
		c.Set("X-Cache", "HIT")
		return c.Send(page.Body)
	}

	if err := c.Next(); err != nil {
		return err
	}

	if c.Response().StatusCode() == fiber.StatusOK {
		page := services.CachedPage{
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}
		if err := services.SetCachedPage(key, page, services.GetIndexPageTTL()); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Unable to cache index page...")
		}
	}
	c.Set("X-Cache", "MISS")

	return nil
}
