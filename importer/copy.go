package importer

import (
	"dietcalc/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CopyDatabase moves the food tables from one store to another,
// upserting by primary key so the copy can be rerun.
func CopyDatabase(src, dst *gorm.DB) error {
	var categories []models.Category
	if err := src.Find(&categories).Error; err != nil {
		return err
	}
	if len(categories) > 0 {
		if err := dst.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
			return err
		}
	}

	var foods []models.Food
	if err := src.Find(&foods).Error; err != nil {
		return err
	}
	if len(foods) > 0 {
		if err := dst.Clauses(clause.OnConflict{UpdateAll: true}).Create(&foods).Error; err != nil {
			return err
		}
	}

	var measures []models.HouseholdMeasure
	if err := src.Find(&measures).Error; err != nil {
		return err
	}
	if len(measures) > 0 {
		if err := dst.Clauses(clause.OnConflict{UpdateAll: true}).Create(&measures).Error; err != nil {
			return err
		}
	}
	return nil
}
