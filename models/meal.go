package models

// Meal is a named composition of food items ("Breakfast", "Lunch", ...).
// Deleting a meal takes its items with it.
type Meal struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Items []MealItem `json:"items"`
}

// MealItem is one food inside a meal, quantity in grams.
type MealItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	MealID   uint    `gorm:"index;not null" json:"meal_id"`
	FoodID   uint    `gorm:"not null" json:"food_id"`
	Quantity float64 `gorm:"not null" json:"quantity"`

	Food *Food `json:"food"`
}
