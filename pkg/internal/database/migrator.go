package database

import (
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Community{},
	&models.Post{},
	&models.Comment{},
	&models.Message{},
	&models.Notification{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Reaction{},
			&models.Follow{},
			&models.Membership{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
