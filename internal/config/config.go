package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config — конфигурация бота из переменных окружения.
type Config struct {
	TelegramToken  string        `env:"TELEGRAM_TOKEN,required"`
	OWMAPIKey      string        `env:"OWM_API_KEY"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	Debug          bool          `env:"DEBUG" envDefault:"false"`
}

// Load читает конфигурацию из окружения.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("не удалось разобрать переменные окружения: %w", err)
	}
	return cfg, nil
}
