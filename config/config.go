package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisStateDB int    `mapstructure:"REDIS_STATE_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Gemini API key.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Instagram messaging configuration.
	InstagramAccessToken string `mapstructure:"INSTAGRAM_ACCESS_TOKEN"`
	InstagramVerifyToken string `mapstructure:"INSTAGRAM_VERIFY_TOKEN"`
	InstagramPageID      string `mapstructure:"INSTAGRAM_PAGE_ID"`
	InstagramGraphURL    string `mapstructure:"INSTAGRAM_GRAPH_URL"`

	// Hotel facts surfaced to guests.
	HotelName    string `mapstructure:"HOTEL_NAME"`
	HotelAddress string `mapstructure:"HOTEL_ADDRESS"`
	CheckInTime  string `mapstructure:"CHECK_IN_TIME"`
	CheckOutTime string `mapstructure:"CHECK_OUT_TIME"`

	// Nightly rates per room type.
	RateStandard float64 `mapstructure:"RATE_STANDARD"`
	RateDeluxe   float64 `mapstructure:"RATE_DELUXE"`
	RateSuite    float64 `mapstructure:"RATE_SUITE"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STATE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("HOTEL_NAME", "Grand Palace Hotel")
	viper.SetDefault("HOTEL_ADDRESS", "123 Luxury Street, City Center")
	viper.SetDefault("CHECK_IN_TIME", "3:00 PM")
	viper.SetDefault("CHECK_OUT_TIME", "11:00 AM")
	viper.SetDefault("RATE_STANDARD", 100.0)
	viper.SetDefault("RATE_DELUXE", 150.0)
	viper.SetDefault("RATE_SUITE", 250.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
