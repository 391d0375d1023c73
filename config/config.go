package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey      string `mapstructure:"OPENAI_API_KEY"`   // API key for OpenAI
	PlannerModelID string `mapstructure:"PLANNER_MODEL_ID"` // e.g., "gpt-4o"
	PlanTimeoutSec int    `mapstructure:"PLAN_TIMEOUT_SECONDS"`

	// Rate Limiting (fixed window, per client IP, single process)
	RateLimitPerWindow int `mapstructure:"RATE_LIMIT_PER_WINDOW"`
	RateLimitWindowSec int `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`

	// Site Store
	SiteTTLHours      int `mapstructure:"SITE_TTL_HOURS"`
	StoreSweepMinutes int `mapstructure:"STORE_SWEEP_MINUTES"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("PLANNER_MODEL_ID", "gpt-4o")
	viper.SetDefault("PLAN_TIMEOUT_SECONDS", 30)
	viper.SetDefault("RATE_LIMIT_PER_WINDOW", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("SITE_TTL_HOURS", 72)
	viper.SetDefault("STORE_SWEEP_MINUTES", 15)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		// The planner degrades to the deterministic composer without a key,
		// so this is a warning rather than a startup failure.
		log.Println("WARN: OPENAI_API_KEY is not set; every plan will use the deterministic fallback.")
	}

	return
}
