package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"dietcalc/config"
	"dietcalc/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{DisableForeignKeyConstraintWhenMigrating: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Food{},
		&models.HouseholdMeasure{},
		&models.Meal{},
		&models.MealItem{},
		&models.UserProfile{},
	))
	config.DB = db

	return SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createFoodViaAPI(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/foods", gin.H{
		"name":         name,
		"description":  "test food",
		"energy_kcal":  123.5,
		"protein":      2.6,
		"carbohydrate": 25.8,
		"lipid":        1.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var food models.Food
	decode(t, w, &food)
	return food.ID
}

func TestWelcome(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DietCalc")
}

func TestCalculateEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/nutrition/calculate", gin.H{
		"age":            30,
		"weight":         80,
		"height":         180,
		"sex":            "M",
		"activity_level": "moderately_active",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		TMB            float64                   `json:"tmb"`
		GET            float64                   `json:"get"`
		ActivityFactor float64                   `json:"activity_factor"`
		Macros         map[string]map[string]int `json:"macros"`
		Explanation    string                    `json:"explanation"`
	}
	decode(t, w, &res)
	assert.Equal(t, 1780.0, res.TMB)
	assert.Equal(t, 2759.0, res.GET)
	assert.Equal(t, 1.55, res.ActivityFactor)
	assert.Equal(t, 10, res.Macros["protein"]["min_pct"])
	assert.NotEmpty(t, res.Explanation)
}

func TestCalculateEndpointRejectsInvalidInput(t *testing.T) {
	r := setupRouter(t)

	bad := []gin.H{
		{"age": 0, "weight": 80, "height": 180, "sex": "M", "activity_level": "sedentary"},
		{"age": 30, "weight": -5, "height": 180, "sex": "M", "activity_level": "sedentary"},
		{"age": 30, "weight": 80, "height": 180, "sex": "X", "activity_level": "sedentary"},
		{"age": 30, "weight": 80, "height": 180, "sex": "M", "activity_level": "couch_potato"},
		{"weight": 80, "height": 180, "sex": "M", "activity_level": "sedentary"},
	}
	for i, body := range bad {
		w := doJSON(t, r, http.MethodPost, "/nutrition/calculate", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "case %d", i)
	}
}

func TestFoodEndpoints(t *testing.T) {
	r := setupRouter(t)

	// Missing required fields.
	w := doJSON(t, r, http.MethodPost, "/foods", gin.H{"name": "incomplete"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	id := createFoodViaAPI(t, r, "Arroz, integral, cozido")
	createFoodViaAPI(t, r, "Feijão, preto, cozido")

	w = doJSON(t, r, http.MethodGet, "/foods?search=arroz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var foods []models.Food
	decode(t, w, &foods)
	require.Len(t, foods, 1)
	assert.Equal(t, "Arroz, integral, cozido", foods[0].Name)

	// Patch one field, the rest stays.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/foods/%d", id), gin.H{"energy_kcal": 130.0})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Food
	decode(t, w, &updated)
	require.NotNil(t, updated.EnergyKcal)
	assert.Equal(t, 130.0, *updated.EnergyKcal)
	assert.Equal(t, "Arroz, integral, cozido", updated.Name)

	w = doJSON(t, r, http.MethodGet, "/foods/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/foods/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/foods/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesEndpointEmptyList(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/foods/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestMealEndpoints(t *testing.T) {
	r := setupRouter(t)
	foodID := createFoodViaAPI(t, r, "Arroz, integral, cozido")

	w := doJSON(t, r, http.MethodPost, "/meals", gin.H{
		"name": "Lunch",
		"items": []gin.H{
			{"food_id": foodID, "quantity": 150},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var meal models.Meal
	decode(t, w, &meal)
	require.Len(t, meal.Items, 1)

	// Dangling food reference is rejected.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/meals/%d/items", meal.ID), gin.H{
		"food_id": 999, "quantity": 50,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Item on a meal that does not exist.
	w = doJSON(t, r, http.MethodPost, "/meals/999/items", gin.H{
		"food_id": foodID, "quantity": 50,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/meals/%d/items/%d", meal.ID, meal.Items[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &meal)
	assert.Empty(t, meal.Items)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/meals/%d", meal.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/meals/%d", meal.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/profile", gin.H{"age": 30, "weight": 80})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	first := gin.H{
		"name": "Paulo", "age": 30, "weight": 80, "height": 180,
		"sex": "M", "activity_level": "moderately_active",
		"goal_tmb": 1780, "goal_get": 2759,
	}
	w = doJSON(t, r, http.MethodPost, "/profile", first)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	second := gin.H{
		"name": "Paulo", "age": 31, "weight": 78.5, "height": 180,
		"sex": "M", "activity_level": "very_active",
	}
	w = doJSON(t, r, http.MethodPost, "/profile", second)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.UserProfile
	decode(t, w, &profile)
	assert.Equal(t, 31, profile.Age)
	assert.Equal(t, "very_active", profile.ActivityLevel)
	assert.Zero(t, profile.GoalTMB) // full replace wiped the old goals
}

func TestMeasureEndpoints(t *testing.T) {
	r := setupRouter(t)
	foodID := createFoodViaAPI(t, r, "Pão, francês")

	w := doJSON(t, r, http.MethodPost, "/measures", gin.H{
		"food_id": foodID, "unit_name": "Fatia", "quantity_g": 25,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var measure models.HouseholdMeasure
	decode(t, w, &measure)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/measures/%d", foodID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var measures []models.HouseholdMeasure
	decode(t, w, &measures)
	assert.Len(t, measures, 1)

	// Unknown food reference.
	w = doJSON(t, r, http.MethodPost, "/measures", gin.H{
		"food_id": 999, "unit_name": "Fatia", "quantity_g": 25,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/measures/%d", measure.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/measures/%d", measure.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
