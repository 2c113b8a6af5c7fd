package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"dietcalc/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type mealCreateRequest struct {
	Name  string                     `json:"name" binding:"required"`
	Items []services.MealItemRequest `json:"items"`
}

// POST /meals
func CreateMeal(c *gin.Context) {
	var req mealCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	meal, err := services.CreateMeal(req.Name, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// GET /meals?skip=&limit=
func ListMeals(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	meals, err := services.ListMeals(skip, limit)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/:id
func GetMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	meal, err := services.GetMeal(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id — items go with the meal.
func DeleteMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteMeal(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /meals/:id/items
func AddMealItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.MealItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	meal, err := services.AddMealItem(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		default:
			internalError(c)
		}
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id/items/:item_id
func RemoveMealItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	meal, err := services.RemoveMealItem(id, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meal)
}
