package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Store       StoreConfig
	Checkout    CheckoutConfig
}

type StoreConfig struct {
	DataPath string
}

type CheckoutConfig struct {
	// DefaultItemWeight is the nominal unit weight (kg) assumed for products
	// without an explicit weight. Business default, not derived from anything.
	DefaultItemWeight float64
	// ConfirmationDelay is the fixed pause between order placement and the
	// cart clear / redirect.
	ConfirmationDelay time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DATA_PATH", "storefront.db")
	viper.SetDefault("DEFAULT_ITEM_WEIGHT", "0.5")
	viper.SetDefault("CONFIRMATION_DELAY", "2s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	defaultWeight := viper.GetFloat64("DEFAULT_ITEM_WEIGHT")
	if defaultWeight <= 0 {
		return nil, fmt.Errorf("DEFAULT_ITEM_WEIGHT must be positive")
	}

	confirmationDelay, err := time.ParseDuration(getEnvOrViper("CONFIRMATION_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONFIRMATION_DELAY: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Store: StoreConfig{
			DataPath: getEnvOrViper("STORE_DATA_PATH", "storefront.db"),
		},
		Checkout: CheckoutConfig{
			DefaultItemWeight: defaultWeight,
			ConfirmationDelay: confirmationDelay,
		},
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
