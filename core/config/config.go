package config

import (
	"reflect"
	"strings"

	"market-sync/core/database"
	"market-sync/core/logger"
	"market-sync/core/server"
	"market-sync/core/storage"
	"market-sync/feature/market"
	"market-sync/feature/ozon"
	"market-sync/feature/supplier"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the serve-mode API.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the run-history database.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the feed object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Feed holds configuration for the supplier feed source.
	Feed supplier.Config `mapstructure:"feed"`
	// Ozon holds configuration for the Ozon target.
	Ozon ozon.Config `mapstructure:"ozon"`
	// Market holds configuration for the Yandex.Market target.
	Market market.Config `mapstructure:"market"`
	// Sync holds configuration for scheduled runs in serve mode.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig controls scheduled synchronization in serve mode.
type SyncConfig struct {
	// Schedule is a cron expression; empty disables scheduled runs.
	Schedule string `mapstructure:"schedule" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. OZON_CLIENT_ID -> ozon.client_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
