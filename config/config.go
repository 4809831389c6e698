package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Port the admin API listens on
	Port int `env:"PORT" envDefault:"5250"`

	// Path to the sqlite database file
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/propman.db"`

	// Origins allowed to call the API
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// SalesTaxRefresh configuration
	SalesTaxRefresh struct {
		// How often cached inventory sales tax values are re-derived.
		// Zero disables the background sweep.
		Interval time.Duration `env:"SALES_TAX_REFRESH_INTERVAL" envDefault:"24h"`
	}

	// SMTP configuration for the contact mailer
	SMTP struct {
		Host        string `env:"SMTP_HOST"`
		Port        int    `env:"SMTP_PORT" envDefault:"587"`
		Username    string `env:"SMTP_USERNAME"`
		Password    string `env:"SMTP_PASSWORD"`
		FromAddress string `env:"SMTP_FROM_ADDRESS"`
		FromName    string `env:"SMTP_FROM_NAME" envDefault:"Property Manager"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
