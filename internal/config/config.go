package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis event channel; publishing is disabled when RedisAddr is empty
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	EventsChannel string `mapstructure:"EVENTS_CHANNEL"`

	// Transition engine tuning
	TransitionMaxAttempts int           `mapstructure:"TRANSITION_MAX_ATTEMPTS"`
	TransitionBackoffStep time.Duration `mapstructure:"TRANSITION_BACKOFF_STEP"`
	TransitionTxTimeout   time.Duration `mapstructure:"TRANSITION_TX_TIMEOUT"`
	TransitionLockTimeout time.Duration `mapstructure:"TRANSITION_LOCK_TIMEOUT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "device_checkout")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("EVENTS_CHANNEL", "device-requests")

	viper.SetDefault("TRANSITION_MAX_ATTEMPTS", 3)
	viper.SetDefault("TRANSITION_BACKOFF_STEP", time.Second)
	viper.SetDefault("TRANSITION_TX_TIMEOUT", 30*time.Second)
	viper.SetDefault("TRANSITION_LOCK_TIMEOUT", 10*time.Second)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TransitionMaxAttempts < 1 {
		return fmt.Errorf("TRANSITION_MAX_ATTEMPTS must be at least 1")
	}
	if config.TransitionBackoffStep < 0 {
		return fmt.Errorf("TRANSITION_BACKOFF_STEP must not be negative")
	}
	if config.TransitionTxTimeout <= 0 {
		return fmt.Errorf("TRANSITION_TX_TIMEOUT must be positive")
	}
	// A lock wait longer than the transaction itself would never surface as 55P03.
	if config.TransitionLockTimeout < 0 || config.TransitionLockTimeout > config.TransitionTxTimeout {
		return fmt.Errorf("TRANSITION_LOCK_TIMEOUT must be between 0 and TRANSITION_TX_TIMEOUT")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EventsEnabled reports whether request events should be published to redis
func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}
