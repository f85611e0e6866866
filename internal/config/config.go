package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	GoogleAPIKey   string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	MapsBaseURL    string        `mapstructure:"MAPS_BASE_URL"`
	RedisUrl       string        `mapstructure:"REDIS_URL"`
	TravelCacheTTL time.Duration `mapstructure:"TRAVEL_CACHE_TTL"`
}

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Set default values
	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("MAPS_BASE_URL", "https://maps.googleapis.com")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("TRAVEL_CACHE_TTL", "5m")

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".") // Look in the project root directory

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Map the values to the Config struct
	err = viper.Unmarshal(&c)
	return
}
