package controllers

import (
	"net/http"

	"dietcalc/utils"

	"github.com/gin-gonic/gin"
)

type calculateRequest struct {
	Age           int     `json:"age" binding:"required,gt=0"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Sex           string  `json:"sex" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

// POST /nutrition/calculate — pure computation, nothing is stored.
func CalculateNutrition(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	res, err := utils.CalculateNutrition(req.Age, req.Weight, req.Height, req.Sex, req.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
