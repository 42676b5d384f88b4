package service

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"bookapi/cache"
	"bookapi/models"
)

// RequestLogger logs one line per completed request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// TrackUserRequest records the method and route under the caller's username
// query parameter. A failed cache write never fails the request.
func TrackUserRequest(cacher cache.RequestCacher, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := c.GetQuery("username")
		if !ok {
			c.Next()
			return
		}

		userRequest := models.UserRequest{
			Method: c.Request.Method,
			Route:  c.Request.URL.Path,
		}

		entry, err := json.Marshal(userRequest)
		if err == nil {
			if err := cacher.Write(username, entry); err != nil {
				log.Warn("failed to record user request", "username", username, "error", err)
			}
		}

		c.Next()
	}
}
