// Package importer holds the offline batch tools that populate the food
// tables: the TACO spreadsheet loader, the household-measure seeder and
// the database copy used when moving from SQLite to Postgres.
package importer

import (
	"strconv"
	"strings"

	"dietcalc/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// The TACO Excel export interleaves category header rows with food rows
// and uses pt-BR number formatting. Parsing is best effort: cells the
// table marks as unknown stay nil, trace amounts become zero.

// CleanValue parses one nutrient cell. "tr"/"traços" means a trace
// amount (zero), "*" and empty mean unknown (nil), numbers may use a
// decimal comma. Anything unparsable is treated as unknown.
func CleanValue(cell string) *float64 {
	v := strings.TrimSpace(cell)
	switch strings.ToLower(v) {
	case "tr", "traços":
		zero := 0.0
		return &zero
	case "", "*":
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &f
}

// IsCategoryRow reports whether a row is a category header: the first
// column carries text while the name column is empty.
func IsCategoryRow(row []string) bool {
	return strings.TrimSpace(cell(row, 0)) != "" && strings.TrimSpace(cell(row, 1)) == ""
}

// IsHeaderRepetition filters the column-header rows the spreadsheet
// repeats between sections.
func IsHeaderRepetition(name string) bool {
	return strings.Contains(name, "Número do") || strings.Contains(name, "Medida")
}

// Column layout of the TACO export. 0: id, 1: name, then nutrients:
// 2: humidity, 3: kcal, 4: kJ, 5: protein, 6: lipid, 7: cholesterol,
// 8: carbohydrate, 9: fiber, 10: ash, 11: Ca, 12: Mg, 13: Mn, 14: P,
// 15: Fe, 16: Na, 17: K, 18: Cu, 19: Zn, 20: retinol, 21: RE, 22: RAE,
// 23: thiamin, 24: riboflavin, 25: pyridoxine, 26: niacin, 27: vit C.
const nutrientColumns = 26

// FoodFromRow maps one food row onto the model. Nutrient values are per
// 100 g, which is the table's serving basis.
func FoodFromRow(row []string, categoryID *uint) models.Food {
	vals := make([]*float64, nutrientColumns)
	for i := range vals {
		vals[i] = CleanValue(cell(row, i+2))
	}
	return models.Food{
		Name:       strings.TrimSpace(cell(row, 1)),
		CategoryID: categoryID,
		BaseQty:    100,
		BaseUnit:   "g",

		Humidity:     vals[0],
		EnergyKcal:   vals[1],
		EnergyKj:     vals[2],
		Protein:      vals[3],
		Lipid:        vals[4],
		Cholesterol:  vals[5],
		Carbohydrate: vals[6],
		Fiber:        vals[7],
		Ash:          vals[8],
		Calcium:      vals[9],
		Magnesium:    vals[10],
		Manganese:    vals[11],
		Phosphorus:   vals[12],
		Iron:         vals[13],
		Sodium:       vals[14],
		Potassium:    vals[15],
		Copper:       vals[16],
		Zinc:         vals[17],
		Retinol:      vals[18],
		RE:           vals[19],
		RAE:          vals[20],
		Thiamin:      vals[21],
		Riboflavin:   vals[22],
		Pyridoxine:   vals[23],
		Niacin:       vals[24],
		VitaminC:     vals[25],
	}
}

// ImportTACO reads the spreadsheet and loads every food row under the
// most recently seen category. The first three rows are headers.
// Returns the number of foods created.
func ImportTACO(db *gorm.DB, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, err
	}

	var current *models.Category
	count := 0
	for i, row := range rows {
		if i < 3 {
			continue
		}
		if IsCategoryRow(row) {
			name := strings.TrimSpace(cell(row, 0))
			if IsHeaderRepetition(name) {
				continue
			}
			var cat models.Category
			if err := db.Where(models.Category{Name: name}).FirstOrCreate(&cat).Error; err != nil {
				return count, err
			}
			current = &cat
			continue
		}
		if strings.TrimSpace(cell(row, 1)) == "" {
			continue
		}

		var categoryID *uint
		if current != nil {
			categoryID = &current.ID
		}
		food := FoodFromRow(row, categoryID)
		if err := db.Create(&food).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// cell tolerates the ragged rows excelize returns: trailing empty cells
// are simply absent from the slice.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
