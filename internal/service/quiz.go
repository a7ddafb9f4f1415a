package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

var (
	ErrNoCategorySelected   = errors.New("no categories selected")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrQuizFinished         = errors.New("quiz already finished")
	ErrQuizNotFinished      = errors.New("quiz not finished yet")
)

// DefaultQuizSize bounds the number of questions sampled into one test run.
const DefaultQuizSize = 25

// QuizService drives the batch test mode: a bounded sample of questions
// scored as a single run. Unlike the free drill it never writes to the
// long-term per-item statistics.
type QuizService struct {
	vocab  VocabStore
	grader *Grader
	size   int
}

// NewQuizService creates a new QuizService. size caps the sample; values
// below 1 fall back to DefaultQuizSize.
func NewQuizService(vocab VocabStore, grader *Grader, size int) *QuizService {
	if size < 1 {
		size = DefaultQuizSize
	}
	return &QuizService{
		vocab:  vocab,
		grader: grader,
		size:   size,
	}
}

// Start samples min(size, pool) items without replacement from the selected
// categories. Every start draws from a freshly seeded random source, so two
// runs over the same categories give different samples. Rows without a
// translation never enter the pool.
func (s *QuizService) Start(categories []string) (*entities.QuizSession, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategorySelected
	}

	pool := s.vocab.TrainableByCategories(categories)
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > s.size {
		pool = pool[:s.size]
	}

	return entities.NewQuizSession(categories, pool), nil
}

// Submit grades the answer for the current question and advances the run.
// Returns ErrQuizFinished once every sampled question is answered.
func (s *QuizService) Submit(sess *entities.QuizSession, answer string) (bool, error) {
	if sess.Completed() {
		return false, ErrQuizFinished
	}

	correct := s.grader.Grade(answer, sess.Current().English)
	sess.RecordAnswer(answer, correct)
	return correct, nil
}

// Summary evaluates a completed run in sampled order.
func (s *QuizService) Summary(sess *entities.QuizSession) (*entities.QuizResult, error) {
	if !sess.Completed() {
		return nil, ErrQuizNotFinished
	}
	return sess.Result(), nil
}
