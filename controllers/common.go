package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter, answering 422 itself when the
// value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id64), true
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
