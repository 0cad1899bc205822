package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	MailboxCapacity int
	RateLimit       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MAILBOX_CAPACITY", 32)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		MailboxCapacity: viper.GetInt("MAILBOX_CAPACITY"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
	}

	if cfg.MailboxCapacity < 1 {
		log.Printf("Warning: Invalid MAILBOX_CAPACITY (%d). Defaulting to 32.\n", cfg.MailboxCapacity)
		cfg.MailboxCapacity = 32
	}

	return cfg, nil
}
