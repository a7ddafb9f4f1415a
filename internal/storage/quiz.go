package storage

import (
	"sync"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

// QuizStorage provides in-memory storage for test runs by chat ID, plus the
// category selection a chat has toggled before starting a run.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
	pending  map[int64]map[string]struct{}
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*entities.QuizSession),
		pending:  make(map[int64]map[string]struct{}),
	}
}

// Store saves the quiz session for a chat.
func (s *QuizStorage) Store(chatID int64, sess *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sess
}

// Get retrieves the quiz session of a chat.
func (s *QuizStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Delete removes the quiz session of a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// TogglePending flips a category in the chat's pre-start selection and
// reports whether it is selected afterwards.
func (s *QuizStorage) TogglePending(chatID int64, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[chatID] == nil {
		s.pending[chatID] = make(map[string]struct{})
	}
	if _, ok := s.pending[chatID][category]; ok {
		delete(s.pending[chatID], category)
		return false
	}
	s.pending[chatID][category] = struct{}{}
	return true
}

// PendingSelected reports whether a category is in the chat's selection.
func (s *QuizStorage) PendingSelected(chatID int64, category string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[chatID][category]
	return ok
}

// Pending returns the chat's selected categories, filtered and ordered by
// the given category list.
func (s *QuizStorage) Pending(chatID int64, order []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, cat := range order {
		if _, ok := s.pending[chatID][cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

// ClearPending drops the chat's category selection.
func (s *QuizStorage) ClearPending(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, chatID)
}
