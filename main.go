package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"bookapi/cache"
	"bookapi/config"
	"bookapi/service"
	"bookapi/store"
	"bookapi/validation"
)

func main() {
	settings := config.LoadSettings()
	log := config.SetupLogger(settings.LogLevel)
	gin.SetMode(settings.GinMode)

	// Activity tracking is optional: without a redis address the service runs
	// with the feature disabled.
	var activity cache.RequestCacher
	if settings.RedisURL != "" {
		client, err := config.SetupRedis(settings.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, activity tracking disabled", "addr", settings.RedisURL, "error", err)
		} else {
			activity = cache.NewRedisRequestCacher(client, settings.ActivityMaxEntries)
		}
	}

	library := store.NewMemoryBookStore()
	handlers := service.NewHandlers(library, validation.NewBookValidator(), activity, log)
	routes := service.SetupRoutes(handlers)

	log.Info("starting server", "app", settings.AppName, "addr", settings.Addr())
	if err := routes.Run(settings.Addr()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
