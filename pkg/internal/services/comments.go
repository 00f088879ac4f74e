package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetComment(id uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.Preload("Author").Where("id = ?", id).First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

// ListPostComment returns the comments of a post in creation order.
func ListPostComment(post models.Post) ([]models.Comment, error) {
	var items []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list comments: %v", err)
	}
	return items, nil
}

func CountComment(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&models.Comment{}).Count(&count).Error
	return count, err
}

func ListComment(tx *gorm.DB, take int, offset int) ([]models.Comment, error) {
	var items []models.Comment
	if err := tx.
		Preload("Author").
		Limit(take).Offset(offset).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

func NewComment(author models.User, post models.Post, text string) (models.Comment, error) {
	item := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, fmt.Errorf("unable to create comment: %v", err)
	}

	log.Debug().Uint("post", post.ID).Uint("author", author.ID).Msg("Comment created.")

	item.Author = author
	return item, nil
}

func DeleteComment(item models.Comment) error {
	return database.C.Delete(&item).Error
}
