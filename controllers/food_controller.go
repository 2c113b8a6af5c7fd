package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"dietcalc/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /foods?search=&category_id=&skip=&limit=
func ListFoods(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "category_id must be a positive integer"})
			return
		}
		id := uint(id64)
		categoryID = &id
	}

	foods, err := services.ListFoods(c.Query("search"), categoryID, skip, limit)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/categories
func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /foods/:id
func GetFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	food, err := services.GetFood(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /foods
func CreateFood(c *gin.Context) {
	var req services.FoodCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	food, err := services.CreateFood(req)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, food)
}

// PUT /foods/:id — patch semantics, only fields present are applied.
func UpdateFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.FoodUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	food, err := services.UpdateFood(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id
func DeleteFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteFood(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
