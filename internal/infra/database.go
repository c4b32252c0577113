package infra

import (
	"github.com/NightFoX54/ERP-Proje/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection and migrates the schema.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Branch{},
		&model.Account{},
		&model.ProductType{},
		&model.ProductCategory{},
		&model.StockItem{},
		&model.StockMovement{},
		&model.Order{},
		&model.Notification{},
	); err != nil {
		return nil, err
	}

	log.Info().Msg("database connected and migrated")
	return db, nil
}
