package utils

import (
	"errors"
	"fmt"
	"math"
)

// Activity factors applied on top of the Mifflin-St Jeor basal rate.
var activityFactors = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// MacroRange is the gram allowance for one macronutrient derived from a
// percentage-of-calories band.
type MacroRange struct {
	MinGrams int `json:"min_grams"`
	MaxGrams int `json:"max_grams"`
	MinPct   int `json:"min_pct"`
	MaxPct   int `json:"max_pct"`
}

// NutritionResult carries the basal rate (TMB), the total energy
// expenditure (GET) and the macro ranges derived from it.
type NutritionResult struct {
	TMB            float64               `json:"tmb"`
	GET            float64               `json:"get"`
	ActivityFactor float64               `json:"activity_factor"`
	Macros         map[string]MacroRange `json:"macros"`
	Explanation    string                `json:"explanation"`
}

// CalculateNutrition expects age in years, weight in kilograms and height
// in centimeters. Sex is "M" or "F"; activityLevel is one of the
// activityFactors keys. It is a pure computation with no side effects.
func CalculateNutrition(age int, weightKg, heightCm float64, sex, activityLevel string) (*NutritionResult, error) {
	if age <= 0 {
		return nil, errors.New("age must be positive")
	}
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if heightCm <= 0 {
		return nil, errors.New("height must be positive")
	}
	if sex != "M" && sex != "F" {
		return nil, errors.New("sex must be M or F")
	}
	factor, ok := activityFactors[activityLevel]
	if !ok {
		return nil, fmt.Errorf("unknown activity level %q", activityLevel)
	}

	// Mifflin-St Jeor:
	//   men:   10w + 6.25h - 5a + 5
	//   women: 10w + 6.25h - 5a - 161
	tmb := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "M" {
		tmb += 5
	} else {
		tmb -= 161
	}

	get := tmb * factor

	macros := map[string]MacroRange{
		"protein":      macroRange(get, 10, 35, 4),
		"carbohydrate": macroRange(get, 45, 65, 4),
		"lipid":        macroRange(get, 20, 35, 9),
	}

	explanation := fmt.Sprintf(
		"Mifflin-St Jeor basal rate of %d kcal multiplied by activity factor %g gives a total energy expenditure of %d kcal.",
		int(tmb), factor, int(get),
	)

	return &NutritionResult{
		TMB:            round2(tmb),
		GET:            round2(get),
		ActivityFactor: factor,
		Macros:         macros,
		Explanation:    explanation,
	}, nil
}

// macroRange truncates toward zero, matching the gram resolution the
// ranges are quoted in.
func macroRange(kcalTotal float64, minPct, maxPct int, kcalPerG float64) MacroRange {
	return MacroRange{
		MinPct:   minPct,
		MaxPct:   maxPct,
		MinGrams: int(kcalTotal * float64(minPct) / 100 / kcalPerG),
		MaxGrams: int(kcalTotal * float64(maxPct) / 100 / kcalPerG),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
