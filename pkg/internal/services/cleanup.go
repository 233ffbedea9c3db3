package services

import (
	"context"

	"github.com/conclave-dev/conclave/pkg/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DoAutoDatabaseCleanup purges read notifications past the retention
// horizon. Wired to the scheduler in main.
func DoAutoDatabaseCleanup(facts *store.Gorm) {
	horizon := viper.GetInt("cleanup.notification_horizon_days")
	if horizon <= 0 {
		horizon = 30
	}

	log.Debug().Msg("Now cleaning up the database...")

	count, err := facts.PurgeReadNotifications(context.Background(), horizon)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when running database cleanup...")
		return
	}

	log.Debug().Int64("affected", count).Msg("Clean up the database accomplished.")
}
