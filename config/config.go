package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (schedule cache).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	ScheduleCacheTTLSecs int    `mapstructure:"SCHEDULE_CACHE_TTL_SECONDS"`

	// Availability computation options.
	NearClosingMarginMins int `mapstructure:"NEAR_CLOSING_MARGIN_MINS"`
	DefaultBufferMins     int `mapstructure:"DEFAULT_BUFFER_MINS"`
	MidDayBonusMax        int `mapstructure:"MIDDAY_BONUS_MAX"`
	NearClosingPenalty    int `mapstructure:"NEAR_CLOSING_PENALTY"`
}

// AvailabilityConfig is the explicit option set handed to the availability
// service at construction time. The service never reads ambient process
// state; callers build one of these (or take Availability() below).
type AvailabilityConfig struct {
	NearClosingMarginMins int // margin before closing that flags a slot "near closing"
	DefaultBufferMins     int // buffer applied when the service defines none
	MidDayBonusMax        int // max score bonus for slots at the middle of the working window
	NearClosingPenalty    int // score penalty for slots flagged near closing
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("SCHEDULE_CACHE_TTL_SECONDS", 0)
	viper.SetDefault("NEAR_CLOSING_MARGIN_MINS", 60)
	viper.SetDefault("DEFAULT_BUFFER_MINS", 0)
	viper.SetDefault("MIDDAY_BONUS_MAX", 30)
	viper.SetDefault("NEAR_CLOSING_PENALTY", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Availability builds the availability option set from the loaded config.
func Availability() AvailabilityConfig {
	return AvailabilityConfig{
		NearClosingMarginMins: AppConfig.NearClosingMarginMins,
		DefaultBufferMins:     AppConfig.DefaultBufferMins,
		MidDayBonusMax:        AppConfig.MidDayBonusMax,
		NearClosingPenalty:    AppConfig.NearClosingPenalty,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
