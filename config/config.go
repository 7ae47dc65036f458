package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Scheduling grid configuration.
	GridStartHour    int `mapstructure:"GRID_START_HOUR"`
	GridEndHour      int `mapstructure:"GRID_END_HOUR"`
	GridSlotDuration int `mapstructure:"GRID_SLOT_DURATION"`
	GridSlotHeight   int `mapstructure:"GRID_SLOT_HEIGHT"`
	GridWeekStartsOn int `mapstructure:"GRID_WEEK_STARTS_ON"`

	// Lead time (minutes) before a class session fires a reminder.
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
}

// SchedulerConfig carries the grid knobs the scheduling core needs.
// The grid runs from StartHour to EndHour, quantized into
// SlotDuration-minute slots rendered SlotHeight pixels tall.
type SchedulerConfig struct {
	StartHour    int
	EndHour      int
	SlotDuration int
	SlotHeight   int
	WeekStartsOn int // 0=Sunday .. 6=Saturday
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "classgrid")
	viper.SetDefault("GRID_START_HOUR", 8)
	viper.SetDefault("GRID_END_HOUR", 21)
	viper.SetDefault("GRID_SLOT_DURATION", 30)
	viper.SetDefault("GRID_SLOT_HEIGHT", 40)
	viper.SetDefault("GRID_WEEK_STARTS_ON", 1)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Scheduler assembles the grid configuration from the loaded AppConfig.
func Scheduler() SchedulerConfig {
	return SchedulerConfig{
		StartHour:    AppConfig.GridStartHour,
		EndHour:      AppConfig.GridEndHour,
		SlotDuration: AppConfig.GridSlotDuration,
		SlotHeight:   AppConfig.GridSlotHeight,
		WeekStartsOn: AppConfig.GridWeekStartsOn,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
