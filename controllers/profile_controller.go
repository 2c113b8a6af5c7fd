package controllers

import (
	"errors"
	"net/http"

	"dietcalc/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /profile
func GetProfile(c *gin.Context) {
	profile, err := services.GetProfile()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /profile — create-or-replace the singleton profile.
func SaveProfile(c *gin.Context) {
	var req services.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	profile, err := services.SaveProfile(req)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, profile)
}
