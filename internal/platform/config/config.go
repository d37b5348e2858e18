package config

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	Version      string

	// Upstream journal platform.
	BackendBaseURL string `validate:"required,url"`
	BackendTimeout time.Duration
	BackendDebug   bool

	// Local durable state (token + working journal mirror).
	LocalStorePath string `validate:"required"`

	// External OAuth providers.
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// Rate limit applied to the login endpoints, in ulule/limiter notation.
	LoginRateLimit string

	// Origins allowed to call the gateway.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_VERSION", "dev")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("BACKEND_DEBUG", false)
	viper.SetDefault("LOCAL_STORE_PATH", "jma_gateway.db")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.Version = viper.GetString("APP_VERSION")

	cfg.BackendBaseURL = viper.GetString("BACKEND_BASE_URL")
	if cfg.BackendBaseURL == "http://localhost:8000/api" {
		log.Println("Warning: BACKEND_BASE_URL not set. Using local default.")
	}

	timeoutStr := viper.GetString("BACKEND_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for BACKEND_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.BackendTimeout = timeout
	cfg.BackendDebug = viper.GetBool("BACKEND_DEBUG")

	cfg.LocalStorePath = viper.GetString("LOCAL_STORE_PATH")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google login credentials will be forwarded unverified.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
