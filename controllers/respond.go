package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail returns the uniform error body: {"message": "..."}.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// serverError logs the full error server-side and returns a generic 500.
func serverError(c *gin.Context, log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	fail(c, http.StatusInternalServerError, msg)
}

// userIDFromCtx reads the authenticated user's ID set by the auth
// middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// daysParam parses the ?days=N window size, defaulting to 30.
func daysParam(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		return 30
	}
	return days
}
