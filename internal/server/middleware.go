package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/storesearch/internal/logger"
)

// CORSMiddleware allows read-only cross-origin access.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept-Encoding")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware writes one line per request to the application log.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Get().Info("| %s | %s | %s | %d | %s",
			c.ClientIP(), c.Request.Method, c.Request.RequestURI,
			c.Writer.Status(), time.Since(start))
	}
}
