package models

// HouseholdMeasure maps a common serving label ("Fatia",
// "Colher de sopa", ...) to a gram quantity for one food.
// A food may carry any number of measures, duplicates included.
type HouseholdMeasure struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FoodID    uint    `gorm:"index;not null" json:"food_id"`
	UnitName  string  `gorm:"not null" json:"unit_name"`
	QuantityG float64 `gorm:"not null" json:"quantity_g"`
}
