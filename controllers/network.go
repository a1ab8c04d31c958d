package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Liveness check
// @Description Answers pong along with the running build version
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string,version=string}
// @Router /ping [get]
func Ping(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "version": version})
	}
}
