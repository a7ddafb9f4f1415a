package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	vocab           VocabStore
	trainingService TrainingService
	quizService     QuizService
	trainingStore   TrainingStorage
	quizStore       QuizStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	vocab VocabStore,
	trainingService TrainingService,
	quizService QuizService,
	trainingStore TrainingStorage,
	quizStore QuizStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		vocab:           vocab,
		trainingService: trainingService,
		quizService:     quizService,
		trainingStore:   trainingStore,
		quizStore:       quizStore,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		h.handleCommand(ctx, chatID, update.Message.Command())
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return
	}

	h.withErrorHandling(h.handleAnswer(text))(ctx, chatID)
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, command string) {
	var fn HandlerFunc

	switch command {
	case "start":
		fn = h.handleStart()
	case "training":
		fn = h.handleTraining()
	case "test":
		fn = h.handleTest()
	case "fortschritt":
		fn = h.handleProgress()
	case "hilfe", "help":
		fn = func(_ context.Context, chatID int64) error {
			return h.send(newHTMLMessage(chatID, msgHelp))
		}
	default:
		fn = func(_ context.Context, chatID int64) error {
			return h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
	}

	h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
		return err
	}
	return nil
}
