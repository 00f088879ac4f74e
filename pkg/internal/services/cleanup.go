package services

import (
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func GetCleanupRetention() time.Duration {
	retention := viper.GetDuration("cleanup.retention")
	if retention <= 0 {
		return 7 * 24 * time.Hour
	}
	return retention
}

// DoAutoDatabaseCleanup purges soft deleted records older than the retention window.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-GetCleanupRetention())
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().Delete(model, "deleted_at IS NOT NULL AND deleted_at < ?", deadline)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto maintain...")
		}
		count += tx.RowsAffected
	}

	if err := ClearIndexPageCache(); err != nil {
		log.Warn().Err(err).Msg("Unable to clear index page cache during cleanup...")
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
