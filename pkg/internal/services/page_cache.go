package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	localCache "git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/spf13/viper"
)

const IndexPageCacheTag = "index-page"

// CachedPage is a rendered response kept for a short window.
type CachedPage struct {
	Body        []byte `msgpack:"body"`
	ContentType string `msgpack:"content_type"`
}

func GetIndexPageTTL() time.Duration {
	ttl := viper.GetDuration("cache.index_ttl")
	if ttl <= 0 {
		return 20 * time.Second
	}
	return ttl
}

// GetIndexPageCacheKey keys by the full request uri and the viewer, anonymous viewers use 0.
// Commas separate keys inside tag records so they are escaped here.
func GetIndexPageCacheKey(uri string, viewer uint) string {
	return fmt.Sprintf("%s#%d#%s", IndexPageCacheTag, viewer, strings.ReplaceAll(uri, ",", "%2C"))
}

func getPageMarshal() *marshaler.Marshaler {
	return marshaler.New(cache.New[any](localCache.S))
}

func GetCachedPage(key string) (CachedPage, bool) {
	var page CachedPage
	if localCache.S == nil {
		return page, false
	}
	if _, err := getPageMarshal().Get(context.Background(), key, &page); err != nil {
		return page, false
	}
	return page, true
}

func SetCachedPage(key string, page CachedPage, ttl time.Duration) error {
	if localCache.S == nil {
		return fmt.Errorf("cache store is not initialized")
	}

	err := getPageMarshal().Set(
		context.Background(),
		key,
		page,
		store.WithExpiration(ttl),
		store.WithTags([]string{IndexPageCacheTag}),
	)
	// The tag record is written asynchronously after the page, so waiting
	// on the page write alone would leave ClearIndexPageCache blind to it.
	localCache.Flush()

	return err
}

// ClearIndexPageCache drops every cached index page.
func ClearIndexPageCache() error {
	if localCache.S == nil {
		return nil
	}
	return getPageMarshal().Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{IndexPageCacheTag}),
	)
}
