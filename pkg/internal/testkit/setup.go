// Package testkit prepares an isolated store and cache for package tests.
package testkit

import (
	"fmt"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// Setup points database.C at a fresh in-memory sqlite database and cache.S at an empty cache.
func Setup(t testing.TB) {
	t.Helper()

	viper.Reset()
	viper.Set("database.prefix", "")
	viper.Set("security.token_secret", "testing-secret")
	viper.Set("cache.index_ttl", "20s")
	viper.Set("posts.page_size", 10)
	viper.Set("storage.media_dir", t.TempDir())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	raw, err := db.DB()
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db

	require.NoError(t, cache.NewStore())

	t.Cleanup(func() {
		cache.R.Close()
		_ = raw.Close()
	})
}

func NewUser(t testing.TB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, Nick: username}
	require.NoError(t, database.C.Create(&user).Error)
	return user
}

func NewStaff(t testing.TB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, IsStaff: true}
	require.NoError(t, database.C.Create(&user).Error)
	return user
}

func NewGroup(t testing.TB, slug string) models.Group {
	t.Helper()

	group := models.Group{Slug: slug, Title: "Group " + slug, Description: "About " + slug}
	require.NoError(t, database.C.Create(&group).Error)
	return group
}

// NewPost stores a post timestamped one second after the previous one so listings have a stable order.
func NewPost(t testing.TB, author models.User, group *models.Group, text string) models.Post {
	t.Helper()

	post := models.Post{
		Text:     text,
		Language: "en",
		AuthorID: author.ID,
	}
	post.CreatedAt = nextTimestamp()
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, database.C.Omit("Author", "Group").Create(&post).Error)
	return post
}

func NewPosts(t testing.TB, author models.User, group *models.Group, count int) []models.Post {
	t.Helper()

	out := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, NewPost(t, author, group, fmt.Sprintf("Post number %d by %s", i, author.Username)))
	}
	return out
}

var clock = time.Now().Add(-24 * time.Hour)

func nextTimestamp() time.Time {
	clock = clock.Add(time.Second)
	return clock
}
