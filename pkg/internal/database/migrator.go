package database

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"gorm.io/gorm"
)

// AutoMaintainRange are the soft deleted models purged by the cleanup job.
var AutoMaintainRange = []any{
	&models.Comment{},
	&models.Post{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			[]any{&models.User{}, &models.Group{}},
			append(AutoMaintainRange, &models.Follow{})...,
		)...,
	); err != nil {
		return err
	}

	return nil
}
