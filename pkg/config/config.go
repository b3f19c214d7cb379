package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds the application's runtime configuration, sourced from the
// environment with an optional .env file for local development.
type AppConfig struct {
	PgsqlURL          string        `mapstructure:"PGSQL_URL"`
	Port              string        `mapstructure:"PORT"`
	IsProduction      bool          `mapstructure:"IS_PRODUCTION"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTExpiryDuration time.Duration `mapstructure:"JWT_EXPIRY_DURATION"`
	JWTIssuer         string        `mapstructure:"JWT_ISSUER"`
	AdminUsername     string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
	MigrationsPath    string        `mapstructure:"MIGRATIONS_PATH"`
}

// LoadConfig reads configuration from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
func LoadConfig(logger *slog.Logger) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "exchange_office_app")
	v.SetDefault("ADMIN_USERNAME", "a")
	v.SetDefault("ADMIN_PASSWORD", "a")
	v.SetDefault("MIGRATIONS_PATH", "migrations")

	// AutomaticEnv alone does not populate Unmarshal; bind each key explicitly.
	keys := []string{
		"PGSQL_URL", "PORT", "IS_PRODUCTION",
		"JWT_SECRET", "JWT_EXPIRY_DURATION", "JWT_ISSUER",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "MIGRATIONS_PATH",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", key, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PgsqlURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
