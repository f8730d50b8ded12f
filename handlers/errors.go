package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortWithDetail writes the {"detail": ...} error body the frontend expects.
func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// bindJSON decodes and validates the body into dst, answering 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}
