package importer

import (
	"strings"

	"dietcalc/models"

	"gorm.io/gorm"
)

type measureSeed struct {
	keyword  string
	measures []models.HouseholdMeasure
}

// Keyword matching is ordered: a food gets the measures of the first
// keyword its name contains, so "pão de queijo" seeds as bread, not
// cheese.
var commonMeasures = []measureSeed{
	{"arroz", []models.HouseholdMeasure{{UnitName: "Colher de sopa cheia", QuantityG: 25}, {UnitName: "Escumadeira", QuantityG: 100}, {UnitName: "Xícara de chá", QuantityG: 150}}},
	{"feijão", []models.HouseholdMeasure{{UnitName: "Concha média", QuantityG: 86}, {UnitName: "Colher de sopa", QuantityG: 18}}},
	{"pão", []models.HouseholdMeasure{{UnitName: "Fatia", QuantityG: 25}, {UnitName: "Unidade", QuantityG: 50}}},
	{"ovo", []models.HouseholdMeasure{{UnitName: "Unidade", QuantityG: 50}}},
	{"banana", []models.HouseholdMeasure{{UnitName: "Unidade média", QuantityG: 85}}},
	{"maçã", []models.HouseholdMeasure{{UnitName: "Unidade média", QuantityG: 130}}},
	{"leite", []models.HouseholdMeasure{{UnitName: "Copo americano", QuantityG: 165}, {UnitName: "Xícara de chá", QuantityG: 200}}},
	{"queijo", []models.HouseholdMeasure{{UnitName: "Fatia", QuantityG: 30}}},
	{"manteiga", []models.HouseholdMeasure{{UnitName: "Colher de sopa", QuantityG: 10}, {UnitName: "Ponta de faca", QuantityG: 5}}},
	{"azeite", []models.HouseholdMeasure{{UnitName: "Colher de sopa", QuantityG: 13}, {UnitName: "Colher de sobremesa", QuantityG: 5}}},
	{"aveia", []models.HouseholdMeasure{{UnitName: "Colher de sopa", QuantityG: 15}}},
	{"frango", []models.HouseholdMeasure{{UnitName: "Filé médio", QuantityG: 100}, {UnitName: "Pedaço pequeno", QuantityG: 50}}},
	{"carne", []models.HouseholdMeasure{{UnitName: "Bife médio", QuantityG: 100}}},
}

// SeedMeasures attaches common household measures to foods whose names
// match a known keyword. Foods that already carry measures are left
// alone, so the seeder can be rerun safely. Returns the number of
// measures created.
func SeedMeasures(db *gorm.DB) (int, error) {
	var foods []models.Food
	if err := db.Find(&foods).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, food := range foods {
		var existing int64
		err := db.Model(&models.HouseholdMeasure{}).
			Where("food_id = ?", food.ID).
			Count(&existing).Error
		if err != nil {
			return count, err
		}
		if existing > 0 {
			continue
		}

		lower := strings.ToLower(food.Name)
		for _, seed := range commonMeasures {
			if !strings.Contains(lower, seed.keyword) {
				continue
			}
			for _, m := range seed.measures {
				m.FoodID = food.ID
				if err := db.Create(&m).Error; err != nil {
					return count, err
				}
				count++
			}
			break
		}
	}
	return count, nil
}
