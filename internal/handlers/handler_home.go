package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Health check
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
