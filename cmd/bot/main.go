package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/titanchik/tg-calfit-bot/internal/bot"
	"github.com/titanchik/tg-calfit-bot/internal/catalog"
	"github.com/titanchik/tg-calfit-bot/internal/config"
	"github.com/titanchik/tg-calfit-bot/internal/engine"
	"github.com/titanchik/tg-calfit-bot/internal/goals"
	"github.com/titanchik/tg-calfit-bot/internal/logger"
	"github.com/titanchik/tg-calfit-bot/internal/profile"
	"github.com/titanchik/tg-calfit-bot/internal/weather"
)

func main() {
	// Переменные окружения из .env, если файл есть
	if err := godotenv.Load(); err != nil {
		stdlog.Printf(".env не найден: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	logger.Init(cfg.Debug)

	store := profile.NewStore()
	weatherClient := weather.NewClient(cfg.OWMAPIKey, cfg.WeatherTimeout)
	calc := goals.NewCalculator(weatherClient)
	eng := engine.New(store, catalog.NewFoodCatalog(), catalog.NewWorkoutCatalog(), calc)

	b, err := bot.New(cfg.TelegramToken, eng)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось создать бота")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Бот запущен")
	if err := b.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Бот завершился с ошибкой")
	}
	log.Info().Msg("Бот остановлен")
}
