package services

import (
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPostOrder is the listing order, newest first.
const DefaultPostOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.User) *gorm.DB {
	return tx.Where("author_id = ?", author.ID)
}

// FilterPostWithFollowing keeps the posts of every author the viewer follows.
func FilterPostWithFollowing(tx *gorm.DB, viewer models.User) *gorm.DB {
	following := database.C.
		Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", viewer.ID)
	return tx.Where("author_id IN (?)", following)
}

func FilterPostWithFuzzySearch(tx *gorm.DB, query string) *gorm.DB {
	query = strings.TrimSpace(query)
	if len(query) == 0 {
		return tx
	}

	query = "%" + strings.ToLower(query) + "%"
	return tx.Where("LOWER(text) LIKE ?", query)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func CountUserPost(user models.User) int64 {
	var count int64
	if err := database.C.Model(&models.Post{}).
		Where("author_id = ?", user.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func ensurePostGroup(item models.Post) (models.Post, error) {
	if item.GroupID == nil {
		item.Group = nil
		return item, nil
	}
	group, err := GetGroupWithID(*item.GroupID)
	if err != nil {
		return item, fmt.Errorf("unable to find group: %w", err)
	}
	item.Group = &group
	return item, nil
}

func NewPost(author models.User, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.Author = author
	item.Language = DetectLanguage(item.Text)

	item, err := ensurePostGroup(item)
	if err != nil {
		return item, err
	}

	log.Debug().Uint("author", author.ID).Msg("Saving post record into database...")
	if err := database.C.Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)

	item, err := ensurePostGroup(item)
	if err != nil {
		return item, err
	}

	err = database.C.Omit(clause.Associations).Save(&item).Error

	return item, err
}

// DeletePost removes the post together with its comments and drops every cached index page.
func DeletePost(item models.Post) error {
	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	}); err != nil {
		return err
	}

	if err := ClearIndexPageCache(); err != nil {
		log.Warn().Err(err).Msg("Unable to clear index page cache after deleting post...")
	}
	return nil
}
