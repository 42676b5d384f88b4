package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes assembles the router around the given handler set.
func SetupRoutes(h *Handlers) *gin.Engine {
	routes := gin.New()
	routes.Use(RequestLogger(h.log))
	routes.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.log.Error("panic recovered", "method", c.Request.Method, "path", c.Request.URL.Path, "error", recovered)
		respondError(c, http.StatusInternalServerError, ErrorKindInternal,
			"An unexpected error occurred. Please try again later.", nil)
	}))

	routes.GET("/", h.Health)

	if h.activity != nil {
		routes.GET("/activity/:username", h.Activity)
	}

	books := routes.Group("/books")
	{
		if h.activity != nil {
			books.Use(TrackUserRequest(h.activity, h.log))
		}

		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBookByID)
		books.DELETE("/:id", h.DeleteBookByID)
	}

	return routes
}
