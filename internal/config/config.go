package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	BoardFile   string `env:"BOARD_FILE" envDefault:"data/scoreboard.json"`
	DatabaseURL string `env:"DATABASE_URL"`
	Locale      string `env:"BOARD_LOCALE" envDefault:"en"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
