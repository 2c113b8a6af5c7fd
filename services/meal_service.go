package services

import (
	"errors"

	"dietcalc/config"
	"dietcalc/models"

	"gorm.io/gorm"
)

// MealItemRequest is one food reference inside a meal payload,
// quantity in grams.
type MealItemRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateMeal inserts the meal and all its items in one transaction.
// Every referenced food must exist, otherwise the whole meal is rolled
// back with ErrFoodNotFound.
func CreateMeal(name string, items []MealItemRequest) (*models.Meal, error) {
	meal := models.Meal{Name: name}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meal).Error; err != nil {
			return err
		}
		for _, it := range items {
			if err := ensureFoodExists(tx, it.FoodID); err != nil {
				return err
			}
			item := models.MealItem{
				MealID:   meal.ID,
				FoodID:   it.FoodID,
				Quantity: it.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reloadMeal(meal.ID)
}

func ListMeals(skip, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 100
	}
	meals := []models.Meal{}
	err := config.DB.
		Preload("Items.Food").
		Offset(skip).
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	for i := range meals {
		if meals[i].Items == nil {
			meals[i].Items = []models.MealItem{}
		}
	}
	return meals, nil
}

func GetMeal(id uint) (*models.Meal, error) {
	return reloadMeal(id)
}

// DeleteMeal removes the meal and its items atomically.
func DeleteMeal(id uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.First(&meal, id).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

// AddMealItem appends one item and returns the reloaded meal.
func AddMealItem(mealID uint, req MealItemRequest) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return nil, err
	}
	if err := ensureFoodExists(config.DB, req.FoodID); err != nil {
		return nil, err
	}
	item := models.MealItem{
		MealID:   meal.ID,
		FoodID:   req.FoodID,
		Quantity: req.Quantity,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return reloadMeal(meal.ID)
}

// RemoveMealItem deletes the item scoped to its meal and returns the
// reloaded meal.
func RemoveMealItem(mealID, itemID uint) (*models.Meal, error) {
	var item models.MealItem
	err := config.DB.
		Where("id = ? AND meal_id = ?", itemID, mealID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		return nil, err
	}
	return reloadMeal(mealID)
}

func ensureFoodExists(tx *gorm.DB, foodID uint) error {
	var food models.Food
	if err := tx.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodNotFound
		}
		return err
	}
	return nil
}

func reloadMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Items.Food").
		First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	if meal.Items == nil {
		meal.Items = []models.MealItem{}
	}
	return &meal, nil
}
