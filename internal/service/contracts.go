package service

import (
	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

// VocabStore is the vocabulary dataset as seen by the drill services.
type VocabStore interface {
	Categories() []string
	ItemsByCategory(category string) []entities.Item
	TrainableByCategories(categories []string) []entities.Item
	FindByKey(german, category string) (int, bool)
	RecordOutcome(idx int, correct bool) error
}
