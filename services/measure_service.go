package services

import (
	"dietcalc/config"
	"dietcalc/models"
)

// MeasureCreateRequest registers a household measure for a food.
type MeasureCreateRequest struct {
	FoodID    uint    `json:"food_id" binding:"required"`
	UnitName  string  `json:"unit_name" binding:"required"`
	QuantityG float64 `json:"quantity_g" binding:"required,gt=0"`
}

func ListMeasures(foodID uint) ([]models.HouseholdMeasure, error) {
	measures := []models.HouseholdMeasure{}
	err := config.DB.Where("food_id = ?", foodID).Find(&measures).Error
	return measures, err
}

func CreateMeasure(req MeasureCreateRequest) (*models.HouseholdMeasure, error) {
	if err := ensureFoodExists(config.DB, req.FoodID); err != nil {
		return nil, err
	}
	measure := models.HouseholdMeasure{
		FoodID:    req.FoodID,
		UnitName:  req.UnitName,
		QuantityG: req.QuantityG,
	}
	if err := config.DB.Create(&measure).Error; err != nil {
		return nil, err
	}
	return &measure, nil
}

func DeleteMeasure(id uint) error {
	var measure models.HouseholdMeasure
	if err := config.DB.First(&measure, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&measure).Error
}
