package queries

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// CompletePostMeta fills the metrics of the posts with one grouped query.
func CompletePostMeta(in ...models.Post) ([]models.Post, error) {
	if len(in) == 0 {
		return in, nil
	}

	idx := lo.Map(in, func(item models.Post, _ int) uint {
		return item.ID
	})
	itemMap := make(map[uint]*models.Post, len(in))
	for i, item := range in {
		itemMap[item.ID] = &in[i]
	}

	// Batch load comment counts
	var comments []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Find(&comments).Error; err != nil {
		return in, err
	}
	for _, info := range comments {
		if post, exists := itemMap[info.PostID]; exists {
			post.Metric.CommentCount = info.Count
		}
	}

	return in, nil
}

// ListPost paginates the posts selected by tx and completes their metrics.
func ListPost(tx *gorm.DB, requested string) (services.Page[models.Post], error) {
	page, err := services.PaginatePost(tx, requested)
	if err != nil {
		return page, err
	}
	page.Items, err = CompletePostMeta(page.Items...)
	return page, err
}
