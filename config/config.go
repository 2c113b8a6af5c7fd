package config

import (
	"log"
	"os"
	"path/filepath"

	"dietcalc/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to Postgres when DATABASE_URL is set and falls back to
// a local SQLite file otherwise, then migrates the schema.
func InitDB() {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	var (
		db  *gorm.DB
		err error
	)
	// Deleting a food must not cascade into meals or measures, so no FK
	// constraints are created for the associations.
	gormCfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = filepath.Join("data", "dietcalc.db")
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			log.Fatalf("Failed to create database directory: %v", mkErr)
		}
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Category{},
		&models.Food{},
		&models.HouseholdMeasure{},
		&models.Meal{},
		&models.MealItem{},
		&models.UserProfile{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
