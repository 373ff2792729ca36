package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (and .env, via godotenv/autoload).
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"./static"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON       bool   `env:"LOG_JSON" envDefault:"false"`
	TrackVisitors bool   `env:"TRACK_VISITORS" envDefault:"true"`
	PortfolioURL  string `env:"PORTFOLIO_URL" envDefault:"http://localhost:8080"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
