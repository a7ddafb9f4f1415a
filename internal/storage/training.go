package storage

import (
	"sync"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

// TrainingStorage keeps free-drill sessions in memory, one per chat and
// category. Sessions survive switching to another category and back, so the
// per-category asked-set is preserved, but nothing survives a restart.
type TrainingStorage struct {
	mu       sync.RWMutex
	sessions map[int64]map[string]*entities.TrainingSession
	active   map[int64]string
}

// NewTrainingStorage creates a new TrainingStorage.
func NewTrainingStorage() *TrainingStorage {
	return &TrainingStorage{
		sessions: make(map[int64]map[string]*entities.TrainingSession),
		active:   make(map[int64]string),
	}
}

// Get retrieves the session of a chat for a category.
func (s *TrainingStorage) Get(chatID int64, category string) (*entities.TrainingSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID][category]
	return sess, ok
}

// Store saves a session under its category and marks that category active.
func (s *TrainingStorage) Store(chatID int64, sess *entities.TrainingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[chatID] == nil {
		s.sessions[chatID] = make(map[string]*entities.TrainingSession)
	}
	s.sessions[chatID][sess.Category] = sess
	s.active[chatID] = sess.Category
}

// Active returns the category the chat is currently training.
func (s *TrainingStorage) Active(chatID int64) (*entities.TrainingSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.active[chatID]
	if !ok {
		return nil, false
	}
	sess, ok := s.sessions[chatID][category]
	return sess, ok
}

// Delete removes all drill state of a chat.
func (s *TrainingStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
	delete(s.active, chatID)
}
