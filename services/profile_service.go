package services

import (
	"errors"

	"dietcalc/config"
	"dietcalc/models"

	"gorm.io/gorm"
)

// ProfileRequest is the full profile payload. Saving always replaces
// every field; there is no partial profile update.
type ProfileRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Sex           string  `json:"sex" binding:"required,oneof=M F"`
	ActivityLevel string  `json:"activity_level" binding:"required,oneof=sedentary lightly_active moderately_active very_active extra_active"`

	GoalTMB      float64 `json:"goal_tmb"`
	GoalGET      float64 `json:"goal_get"`
	GoalProteinG float64 `json:"goal_protein_g"`
	GoalCarbsG   float64 `json:"goal_carbs_g"`
	GoalFatG     float64 `json:"goal_fat_g"`
}

// GetProfile returns the singleton profile, gorm.ErrRecordNotFound when
// it was never set.
func GetProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	err := config.DB.First(&profile, models.SingletonProfileID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile creates the singleton row on first use and fully replaces
// it afterwards. The row is pinned to models.SingletonProfileID, so two
// sequential saves can never leave two profiles behind.
func SaveProfile(req ProfileRequest) (*models.UserProfile, error) {
	name := req.Name
	if name == "" {
		name = "User"
	}

	var profile models.UserProfile
	err := config.DB.First(&profile, models.SingletonProfileID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.ID = models.SingletonProfileID
	profile.Name = name
	profile.Age = req.Age
	profile.Weight = req.Weight
	profile.Height = req.Height
	profile.Sex = req.Sex
	profile.ActivityLevel = req.ActivityLevel
	profile.GoalTMB = req.GoalTMB
	profile.GoalGET = req.GoalGET
	profile.GoalProteinG = req.GoalProteinG
	profile.GoalCarbsG = req.GoalCarbsG
	profile.GoalFatG = req.GoalFatG

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
