package services

import (
	"path/filepath"
	"testing"

	"dietcalc/config"
	"dietcalc/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{DisableForeignKeyConstraintWhenMigrating: true},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Food{},
		&models.HouseholdMeasure{},
		&models.Meal{},
		&models.MealItem{},
		&models.UserProfile{},
	))
	config.DB = db
}

func ptr[T any](v T) *T {
	return &v
}

func createTestFood(t *testing.T, name string, categoryID *uint) *models.Food {
	t.Helper()

	food, err := CreateFood(FoodCreateRequest{
		Name:         name,
		Description:  ptr("test food"),
		EnergyKcal:   ptr(124.0),
		Protein:      ptr(2.6),
		Carbohydrate: ptr(25.8),
		Lipid:        ptr(1.0),
		CategoryID:   categoryID,
	})
	require.NoError(t, err)
	return food
}
