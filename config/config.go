package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// MongoDB configuration. DATABASE_URL carries the credentials and
	// RESERVATIONS_COLLECTION names the target collection; both are
	// required and checked at startup.
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	MongoDatabase          string `mapstructure:"MONGO_DATABASE"`
	ReservationsCollection string `mapstructure:"RESERVATIONS_COLLECTION"`

	// Redis configuration for the availability cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Business hours for the booking grid. Slots run [open, close) on
	// the hour; all wall-clock times are interpreted at UTC+9.
	BusinessOpenHour    int `mapstructure:"BUSINESS_OPEN_HOUR"`
	BusinessCloseHour   int `mapstructure:"BUSINESS_CLOSE_HOUR"`
	SlotIntervalMinutes int `mapstructure:"SLOT_INTERVAL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("MONGO_DATABASE", "tablebook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("BUSINESS_OPEN_HOUR", 10)
	viper.SetDefault("BUSINESS_CLOSE_HOUR", 20)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The store settings have no sane defaults; refusing to start beats
	// failing on the first request.
	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if AppConfig.ReservationsCollection == "" {
		log.Fatal("RESERVATIONS_COLLECTION is not set")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
