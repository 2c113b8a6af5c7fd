package models

// SingletonProfileID pins the one profile row to a fixed primary key so
// create-or-replace never depends on insertion order.
const SingletonProfileID uint = 1

// UserProfile holds the anthropometric inputs and the goals the user
// chose to store. Goals are set explicitly through the profile endpoint,
// never derived automatically from a calculation.
type UserProfile struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`

	GoalTMB      float64 `gorm:"column:goal_tmb" json:"goal_tmb"`
	GoalGET      float64 `gorm:"column:goal_get" json:"goal_get"`
	GoalProteinG float64 `gorm:"column:goal_protein_g" json:"goal_protein_g"`
	GoalCarbsG   float64 `gorm:"column:goal_carbs_g" json:"goal_carbs_g"`
	GoalFatG     float64 `gorm:"column:goal_fat_g" json:"goal_fat_g"`
}
