package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetFollowOnUser(viewer models.User, target models.User) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", viewer.ID, target.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

// IsFollowing is false for anonymous viewers and for the author looking at themself.
func IsFollowing(viewer *models.User, target models.User) (bool, error) {
	if viewer == nil || viewer.ID == target.ID {
		return false, nil
	}
	follow, err := GetFollowOnUser(*viewer, target)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

// FollowUser creates the edge and reports whether a row was inserted.
// Self follows and already existing edges are skipped silently.
func FollowUser(viewer models.User, target models.User) (bool, error) {
	if viewer.ID == target.ID {
		return false, nil
	}

	follow := models.Follow{
		UserID:   viewer.ID,
		AuthorID: target.ID,
	}

	tx := database.C.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if tx.Error != nil {
		return false, fmt.Errorf("unable to create follow: %v", tx.Error)
	}

	if tx.RowsAffected > 0 {
		log.Debug().Uint("user", viewer.ID).Uint("author", target.ID).Msg("Follow created.")
	}
	return tx.RowsAffected > 0, nil
}

// UnfollowUser reports whether an edge was removed.
func UnfollowUser(viewer models.User, target models.User) (bool, error) {
	tx := database.C.
		Where("user_id = ? AND author_id = ?", viewer.ID, target.ID).
		Delete(&models.Follow{})
	if tx.Error != nil {
		return false, fmt.Errorf("unable to delete follow: %v", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func CountFollower(user models.User) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", user.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func CountFollowing(user models.User) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}
