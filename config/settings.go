package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds everything the process reads from the environment.
type Settings struct {
	AppName            string
	Host               string
	Port               int
	GinMode            string
	LogLevel           string
	RedisURL           string
	ActivityMaxEntries int
}

// LoadSettings reads settings from the environment with sane defaults.
func LoadSettings() Settings {
	viper.SetDefault("APP_NAME", "Book Management API")
	viper.SetDefault("HOST", "127.0.0.1")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("ACTIVITY_MAX_ENTRIES", 3)
	viper.AutomaticEnv()

	return Settings{
		AppName:            viper.GetString("APP_NAME"),
		Host:               viper.GetString("HOST"),
		Port:               viper.GetInt("PORT"),
		GinMode:            viper.GetString("GIN_MODE"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		RedisURL:           viper.GetString("REDIS_URL"),
		ActivityMaxEntries: viper.GetInt("ACTIVITY_MAX_ENTRIES"),
	}
}

func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
