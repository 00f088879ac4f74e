package queries

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
)

type FollowPage struct {
	Page services.Page[models.Post]
}

// GetFollowPage lists the posts of every author the viewer follows.
func GetFollowPage(viewer models.User, page string) (FollowPage, error) {
	tx := services.FilterPostWithFollowing(database.C, viewer)
	posts, err := ListPost(tx, page)
	if err != nil {
		return FollowPage{}, fmt.Errorf("unable to list followed posts: %v", err)
	}
	return FollowPage{Page: posts}, nil
}
