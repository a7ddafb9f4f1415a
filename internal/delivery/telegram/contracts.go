package telegram

import (
	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

type VocabStore interface {
	Categories() []string
	ItemsByCategory(category string) []entities.Item
}

type TrainingService interface {
	Start(category string) (*entities.TrainingSession, error)
	Current(sess *entities.TrainingSession) (entities.Item, error)
	Submit(sess *entities.TrainingSession, answer string) (bool, error)
	Advance(sess *entities.TrainingSession)
}

type QuizService interface {
	Start(categories []string) (*entities.QuizSession, error)
	Submit(sess *entities.QuizSession, answer string) (bool, error)
	Summary(sess *entities.QuizSession) (*entities.QuizResult, error)
}

type TrainingStorage interface {
	Get(chatID int64, category string) (*entities.TrainingSession, bool)
	Store(chatID int64, sess *entities.TrainingSession)
	Active(chatID int64) (*entities.TrainingSession, bool)
	Delete(chatID int64)
}

type QuizStorage interface {
	Get(chatID int64) (*entities.QuizSession, bool)
	Store(chatID int64, sess *entities.QuizSession)
	Delete(chatID int64)
	TogglePending(chatID int64, category string) bool
	PendingSelected(chatID int64, category string) bool
	Pending(chatID int64, order []string) []string
	ClearPending(chatID int64)
}
