package services

import (
	"dietcalc/config"
	"dietcalc/models"
)

// FoodCreateRequest mirrors the fields a client supplies when registering
// a food by hand. The bulk importer writes the full nutrient set directly.
type FoodCreateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  *string  `json:"description" binding:"required"`
	EnergyKcal   *float64 `json:"energy_kcal" binding:"required"`
	Protein      *float64 `json:"protein" binding:"required"`
	Carbohydrate *float64 `json:"carbohydrate" binding:"required"`
	Lipid        *float64 `json:"lipid" binding:"required"`
	BaseQty      float64  `json:"base_qty"`
	BaseUnit     string   `json:"base_unit"`
	CategoryID   *uint    `json:"category_id"`
}

// FoodUpdateRequest is a patch: only fields present in the request are
// applied, everything else keeps its stored value.
type FoodUpdateRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	EnergyKcal   *float64 `json:"energy_kcal"`
	Protein      *float64 `json:"protein"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Lipid        *float64 `json:"lipid"`
	BaseQty      *float64 `json:"base_qty"`
	BaseUnit     *string  `json:"base_unit"`
	CategoryID   *uint    `json:"category_id"`
}

// ListFoods filters by case-insensitive substring on the name and by
// exact category, paginated with skip/limit. Order is whatever the store
// returns.
func ListFoods(search string, categoryID *uint, skip, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 100
	}
	q := config.DB.Model(&models.Food{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	foods := []models.Food{}
	err := q.Offset(skip).Limit(limit).Find(&foods).Error
	return foods, err
}

func GetFood(id uint) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func CreateFood(req FoodCreateRequest) (*models.Food, error) {
	food := models.Food{
		Name:         req.Name,
		Description:  req.Description,
		EnergyKcal:   req.EnergyKcal,
		Protein:      req.Protein,
		Carbohydrate: req.Carbohydrate,
		Lipid:        req.Lipid,
		BaseQty:      req.BaseQty,
		BaseUnit:     req.BaseUnit,
		CategoryID:   req.CategoryID,
	}
	if food.BaseQty == 0 {
		food.BaseQty = 100
	}
	if food.BaseUnit == "" {
		food.BaseUnit = "g"
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// UpdateFood applies the non-nil patch fields and returns the stored row.
func UpdateFood(id uint, req FoodUpdateRequest) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.EnergyKcal != nil {
		patch["energy_kcal"] = *req.EnergyKcal
	}
	if req.Protein != nil {
		patch["protein"] = *req.Protein
	}
	if req.Carbohydrate != nil {
		patch["carbohydrate"] = *req.Carbohydrate
	}
	if req.Lipid != nil {
		patch["lipid"] = *req.Lipid
	}
	if req.BaseQty != nil {
		patch["base_qty"] = *req.BaseQty
	}
	if req.BaseUnit != nil {
		patch["base_unit"] = *req.BaseUnit
	}
	if req.CategoryID != nil {
		patch["category_id"] = *req.CategoryID
	}
	if len(patch) > 0 {
		if err := config.DB.Model(&food).Updates(patch).Error; err != nil {
			return nil, err
		}
	}
	return &food, nil
}

func DeleteFood(id uint) error {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&food).Error
}

func ListCategories() ([]models.Category, error) {
	categories := []models.Category{}
	err := config.DB.Find(&categories).Error
	return categories, err
}
