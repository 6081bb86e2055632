package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Token signing configuration. Access and refresh tokens use separate
	// secrets so a leaked access secret cannot mint refresh tokens.
	AccessTokenSecret          string
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	JWTIssuer                  string

	RefreshTokenCookieName string
	RefreshTokenCookiePath string

	// Password reset mail delivery.
	SendgridAPIKey  string
	MailFromAddress string
	FrontendBaseURL string

	ResetTokenExpiryDuration time.Duration

	// External OAuth providers.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Missing signing secrets or a missing mail API key are startup errors, not
// per-request failures.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "10m")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "30m")
	viper.SetDefault("RESET_TOKEN_EXPIRY_DURATION", "30m")
	viper.SetDefault("JWT_ISSUER", "pet-admin-app")
	viper.SetDefault("COOKIE_NAME", "rtid")
	viper.SetDefault("COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("MAIL_FROM_ADDRESS", "admin@test.com")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET is required")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY_DURATION")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = 10 * time.Minute
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiryDuration = accessExpiry

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = 30 * time.Minute
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiry

	resetExpiryStr := viper.GetString("RESET_TOKEN_EXPIRY_DURATION")
	resetExpiry, err := time.ParseDuration(resetExpiryStr)
	if err != nil {
		resetExpiry = 30 * time.Minute
		log.Printf("Warning: Invalid value for RESET_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", resetExpiryStr, resetExpiry)
	}
	cfg.ResetTokenExpiryDuration = resetExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RefreshTokenCookieName = viper.GetString("COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("COOKIE_PATH")

	cfg.SendgridAPIKey = viper.GetString("SENDGRID_API_KEY")
	if cfg.SendgridAPIKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required")
	}
	cfg.MailFromAddress = viper.GetString("MAIL_FROM_ADDRESS")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set. Google sign-in will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
