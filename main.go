package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arkadyvolkov/nutrition-helper/internal/ai"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/config"
	"github.com/arkadyvolkov/nutrition-helper/internal/database"
	"github.com/arkadyvolkov/nutrition-helper/internal/logger"
	"github.com/arkadyvolkov/nutrition-helper/internal/repository"
	"github.com/arkadyvolkov/nutrition-helper/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("starting nutrition helper bot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	store := repository.NewStore(db)

	classifier, err := ai.NewClassifier(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logger.Fatalf("Failed to create classifier: %v", err)
	}
	defer classifier.Close()

	var states state.Manager
	if cfg.Redis.Enabled {
		redisManager, err := state.NewRedisManager(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisManager.Close()
		states = redisManager
		logger.Info("using Redis state manager")
	} else {
		states = state.NewMemoryManager()
		logger.Info("using in-memory state manager")
	}

	profileService := services.NewProfileService(store)
	diaryService := services.NewDiaryService(store)
	analysisService := services.NewAnalysisService(classifier)

	telegramBot, err := bot.NewBot(cfg.TelegramToken, profileService, diaryService, analysisService, states)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	logger.Info("bot is running, press Ctrl+C to stop")
	if err := telegramBot.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Fatalf("Bot stopped with error: %v", err)
	}
	logger.Info("shutdown complete")
}
