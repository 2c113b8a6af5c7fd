package models

// Food is one entry of the food-composition table. All nutrient values
// are relative to BaseQty/BaseUnit (usually 100 g). A nil nutrient means
// the source table has no value for it — not the same thing as zero.
type Food struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"index;not null" json:"name"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	BaseQty     float64 `gorm:"default:100" json:"base_qty"`
	BaseUnit    string  `gorm:"default:g" json:"base_unit"`

	// Macros
	Humidity     *float64 `json:"humidity"`
	EnergyKcal   *float64 `json:"energy_kcal"`
	EnergyKj     *float64 `json:"energy_kj"`
	Protein      *float64 `json:"protein"`
	Lipid        *float64 `json:"lipid"`
	Cholesterol  *float64 `json:"cholesterol"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Fiber        *float64 `json:"fiber"`
	Ash          *float64 `json:"ash"`

	// Minerals
	Calcium    *float64 `json:"calcium"`
	Magnesium  *float64 `json:"magnesium"`
	Manganese  *float64 `json:"manganese"`
	Phosphorus *float64 `json:"phosphorus"`
	Iron       *float64 `json:"iron"`
	Sodium     *float64 `json:"sodium"`
	Potassium  *float64 `json:"potassium"`
	Copper     *float64 `json:"copper"`
	Zinc       *float64 `json:"zinc"`

	// Vitamins
	Retinol    *float64 `json:"retinol"`
	RE         *float64 `gorm:"column:re" json:"re"`
	RAE        *float64 `gorm:"column:rae" json:"rae"`
	Thiamin    *float64 `json:"thiamin"`
	Riboflavin *float64 `json:"riboflavin"`
	Pyridoxine *float64 `json:"pyridoxine"`
	Niacin     *float64 `json:"niacin"`
	VitaminC   *float64 `json:"vitamin_c"`

	Category          *Category          `json:"-"`
	HouseholdMeasures []HouseholdMeasure `json:"-"`
}
