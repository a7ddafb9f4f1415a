package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

var ErrEmptyCategory = errors.New("no vocabulary in category")

// TrainingService drives the free-drill mode: one open-ended question at a
// time with cumulative, never-resetting statistics per item.
type TrainingService struct {
	vocab  VocabStore
	grader *Grader

	rng *rand.Rand
}

// NewTrainingService creates a new TrainingService.
func NewTrainingService(vocab VocabStore, grader *Grader) *TrainingService {
	return &TrainingService{
		vocab:  vocab,
		grader: grader,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start creates a fresh session for the category with a uniformly random
// first question. Returns ErrEmptyCategory when the category has no items.
func (s *TrainingService) Start(category string) (*entities.TrainingSession, error) {
	items := s.vocab.ItemsByCategory(category)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, category)
	}
	return entities.NewTrainingSession(category, len(items), s.rng.Intn(len(items))), nil
}

// Current returns the item the session is asking about. If the category
// shrank since the index was drawn, the index wraps to the first item.
func (s *TrainingService) Current(sess *entities.TrainingSession) (entities.Item, error) {
	items := s.vocab.ItemsByCategory(sess.Category)
	if len(items) == 0 {
		return entities.Item{}, fmt.Errorf("%w: %q", ErrEmptyCategory, sess.Category)
	}
	if sess.CurrentIndex >= len(items) {
		sess.CurrentIndex = 0
	}
	return items[sess.CurrentIndex], nil
}

// Submit grades the answer for the current question, records the outcome in
// the vocabulary store and moves the session to the answer-shown state.
//
// Submitting again while the answer is shown is a no-op: the previous result
// is returned and nothing is re-graded or re-counted. A failed write-back is
// returned to the caller, but the session keeps the grading result and the
// store keeps the in-memory counters, as write-through here is best-effort.
func (s *TrainingService) Submit(sess *entities.TrainingSession, answer string) (bool, error) {
	if sess.State == entities.StateAnswerShown {
		return sess.LastCorrect != nil && *sess.LastCorrect, nil
	}

	item, err := s.Current(sess)
	if err != nil {
		return false, err
	}

	correct := s.grader.Grade(answer, item.English)
	sess.MarkAnswered(correct)

	idx, ok := s.vocab.FindByKey(item.German, sess.Category)
	if !ok {
		return correct, nil
	}
	if err := s.vocab.RecordOutcome(idx, correct); err != nil {
		return correct, fmt.Errorf("record outcome: %w", err)
	}
	return correct, nil
}

// Advance marks the current question as asked and draws the next one
// uniformly at random, with replacement: an already-asked question may come
// up again. Callable in either state, so a question can be skipped.
func (s *TrainingService) Advance(sess *entities.TrainingSession) {
	n := sess.Total
	if n <= 0 {
		n = 1
	}
	sess.AdvanceTo(s.rng.Intn(n))
}
