package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mlindner/vokabeltrainer-bot/internal/config"
	"github.com/mlindner/vokabeltrainer-bot/internal/delivery/telegram"
	"github.com/mlindner/vokabeltrainer-bot/internal/logger"
	"github.com/mlindner/vokabeltrainer-bot/internal/repository"
	"github.com/mlindner/vokabeltrainer-bot/internal/service"
	"github.com/mlindner/vokabeltrainer-bot/internal/storage"
)

func main() {
	// Local development keeps the token in a .env file.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "training",
			Description: "Vokabeln einer Kategorie üben",
		},
		{
			Command:     "test",
			Description: "Test mit bis zu 25 Fragen starten",
		},
		{
			Command:     "fortschritt",
			Description: "Fortschritt der aktuellen Kategorie anzeigen",
		},
		{
			Command:     "hilfe",
			Description: "Hilfe anzeigen",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vocabRepo, err := repository.NewVocabRepository(cfg.VocabFile)
	if err != nil {
		zl.Fatal("failed to load vocabulary",
			zap.String("file", cfg.VocabFile),
			zap.Error(err),
		)
	}

	grader := service.NewGrader()
	trainingService := service.NewTrainingService(vocabRepo, grader)
	quizService := service.NewQuizService(vocabRepo, grader, cfg.QuizSize)

	trainingStore := storage.NewTrainingStorage()
	quizStore := storage.NewQuizStorage()

	handler := telegram.NewHandler(
		bot,
		zl,
		vocabRepo,
		trainingService,
		quizService,
		trainingStore,
		quizStore,
	)

	if err := handler.Run(ctx); err != nil && err != context.Canceled {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
