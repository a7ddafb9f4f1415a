package entities

// TrainingState represents the state of a free-drill session.
type TrainingState string

const (
	StateAwaitingAnswer TrainingState = "awaiting_answer" // question shown, waiting for input
	StateAnswerShown    TrainingState = "answer_shown"    // answer graded, waiting for advance
)

// TrainingSession tracks free-drill progress for one learner in one category.
// It lives in memory only and is not persisted across restarts; the asked-set
// survives category switches because sessions are stored per (chat, category).
type TrainingSession struct {
	Category     string
	Total        int // number of items in the category at session start
	State        TrainingState
	CurrentIndex int              // index into the category's item list
	Asked        map[int]struct{} // indices already advanced past
	LastCorrect  *bool            // grading result of the current question, nil before grading
	ShowExamples bool             // whether English example sentences are revealed
}

// NewTrainingSession creates a session awaiting the first answer.
// The caller picks the initial question index.
func NewTrainingSession(category string, total, startIndex int) *TrainingSession {
	return &TrainingSession{
		Category:     category,
		Total:        total,
		State:        StateAwaitingAnswer,
		CurrentIndex: startIndex,
		Asked:        make(map[int]struct{}),
	}
}

// MarkAnswered records the grading result and moves to the answer-shown state.
// It is a no-op when the current question was already graded, so a repeated
// submission never grades twice.
func (s *TrainingSession) MarkAnswered(correct bool) bool {
	if s.State != StateAwaitingAnswer {
		return false
	}
	s.LastCorrect = &correct
	s.State = StateAnswerShown
	return true
}

// AdvanceTo marks the current question as asked and switches to the next one.
// Valid from either state: advancing without answering skips the question.
func (s *TrainingSession) AdvanceTo(nextIndex int) {
	s.Asked[s.CurrentIndex] = struct{}{}
	s.CurrentIndex = nextIndex
	s.LastCorrect = nil
	s.ShowExamples = false
	s.State = StateAwaitingAnswer
}

// ResetProgress clears the asked-set. The current question and the stored
// statistics are untouched.
func (s *TrainingSession) ResetProgress() {
	s.Asked = make(map[int]struct{})
}

// Progress returns the fraction of the category already asked, in [0, 1].
func (s *TrainingSession) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(len(s.Asked)) / float64(s.Total)
}
