package database

import (
	"log"

	"starfaves/config"
	"starfaves/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the configured store: postgres when a DSN is set,
// otherwise a local sqlite file.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		TranslateError: true,
	}
	var dial gorm.Dialector
	if cfg.DSN != "" {
		dial = postgres.Open(cfg.DSN)
	} else {
		dial = sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on")
	}
	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Planet{},
		&models.Favorite{},
	)
}

// Seed inserts a starter catalog of people and planets when the tables
// are empty, so a fresh sqlite store is immediately usable.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Person{}).Count(&count)
	if count == 0 {
		people := []models.Person{
			{Name: "Luke Skywalker"},
			{Name: "Leia Organa"},
			{Name: "Obi-Wan Kenobi"},
			{Name: "Darth Vader"},
		}
		for _, p := range people {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("seed person %s: %v", p.Name, err)
			}
		}
	}
	db.Model(&models.Planet{}).Count(&count)
	if count == 0 {
		planets := []models.Planet{
			{Name: "Tatooine"},
			{Name: "Alderaan"},
			{Name: "Hoth"},
			{Name: "Dagobah"},
		}
		for _, p := range planets {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("seed planet %s: %v", p.Name, err)
			}
		}
	}
}
