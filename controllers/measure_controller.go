package controllers

import (
	"errors"
	"net/http"

	"dietcalc/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /measures/:food_id
func ListMeasures(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		return
	}
	measures, err := services.ListMeasures(foodID)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, measures)
}

// POST /measures
func CreateMeasure(c *gin.Context) {
	var req services.MeasureCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	measure, err := services.CreateMeasure(req)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, measure)
}

// DELETE /measures/:id
func DeleteMeasure(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteMeasure(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Measure not found"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
