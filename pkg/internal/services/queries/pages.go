package queries

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
)

type IndexPage struct {
	Page  services.Page[models.Post]
	Query string
}

type GroupPage struct {
	Group models.Group
	Page  services.Page[models.Post]
}

type ProfilePage struct {
	Author         models.User
	Page           services.Page[models.Post]
	Following      bool
	IsSelf         bool
	FollowerCount  int64
	FollowingCount int64
}

type PostDetailPage struct {
	Post      models.Post
	Comments  []models.Comment
	PostCount int64
	IsAuthor  bool
}

func GetIndexPage(page, query string) (IndexPage, error) {
	tx := services.FilterPostWithFuzzySearch(database.C, query)
	posts, err := ListPost(tx, page)
	if err != nil {
		return IndexPage{}, fmt.Errorf("unable to list posts: %v", err)
	}
	return IndexPage{Page: posts, Query: query}, nil
}

// GetGroupPage fails with gorm.ErrRecordNotFound when the slug is unknown.
func GetGroupPage(slug, page string) (GroupPage, error) {
	group, err := services.GetGroup(slug)
	if err != nil {
		return GroupPage{}, fmt.Errorf("unable to get group: %w", err)
	}

	posts, err := ListPost(services.FilterPostWithGroup(database.C, group), page)
	if err != nil {
		return GroupPage{}, fmt.Errorf("unable to list group posts: %v", err)
	}
	return GroupPage{Group: group, Page: posts}, nil
}

func GetProfilePage(viewer *models.User, username, page string) (ProfilePage, error) {
	author, err := services.GetUser(username)
	if err != nil {
		return ProfilePage{}, fmt.Errorf("unable to get user: %w", err)
	}

	posts, err := ListPost(services.FilterPostWithAuthor(database.C, author), page)
	if err != nil {
		return ProfilePage{}, fmt.Errorf("unable to list user posts: %v", err)
	}

	following, err := services.IsFollowing(viewer, author)
	if err != nil {
		return ProfilePage{}, err
	}

	return ProfilePage{
		Author:         author,
		Page:           posts,
		Following:      following,
		IsSelf:         viewer != nil && viewer.ID == author.ID,
		FollowerCount:  services.CountFollower(author),
		FollowingCount: services.CountFollowing(author),
	}, nil
}

func GetPostDetailPage(viewer *models.User, id uint) (PostDetailPage, error) {
	post, err := services.GetPost(database.C, id)
	if err != nil {
		return PostDetailPage{}, fmt.Errorf("unable to get post: %w", err)
	}

	comments, err := services.ListPostComment(post)
	if err != nil {
		return PostDetailPage{}, err
	}
	post.Metric.CommentCount = int64(len(comments))

	return PostDetailPage{
		Post:      post,
		Comments:  comments,
		PostCount: services.CountUserPost(post.Author),
		IsAuthor:  viewer != nil && viewer.ID == post.AuthorID,
	}, nil
}
