package entities

// QuizSession represents one bounded test run over a sampled set of items.
// The sample is drawn once at start and stays fixed; a reset replays the
// same questions. Long-term per-item statistics are never touched in this
// mode.
type QuizSession struct {
	Categories []string       // categories the sample was drawn from
	Items      []Item         // sampled items, immutable once drawn
	Position   int            // index of the next unanswered question
	Outcomes   []bool         // grading result per answered question
	Inputs     map[int]string // raw learner input per question position
}

// QuestionResult is one row of the final quiz evaluation.
type QuestionResult struct {
	German    string
	English   string
	UserInput string
	Correct   bool
}

// QuizResult summarizes a completed quiz run.
type QuizResult struct {
	Correct   int
	Incorrect int
	Questions []QuestionResult // in sampled order
}

// NewQuizSession creates an in-progress session over the given sample.
func NewQuizSession(categories []string, items []Item) *QuizSession {
	return &QuizSession{
		Categories: categories,
		Items:      items,
		Inputs:     make(map[int]string),
	}
}

// Completed reports whether every sampled question has been answered.
func (s *QuizSession) Completed() bool {
	return s.Position >= len(s.Items)
}

// Current returns the item at the current position.
func (s *QuizSession) Current() Item {
	return s.Items[s.Position]
}

// RecordAnswer stores the learner's input and the grading result for the
// current question and moves on. The caller must check Completed first.
func (s *QuizSession) RecordAnswer(input string, correct bool) {
	s.Inputs[s.Position] = input
	s.Outcomes = append(s.Outcomes, correct)
	s.Position++
}

// Reset zeroes the run while keeping the sampled items, returning the
// session to the first question.
func (s *QuizSession) Reset() {
	s.Position = 0
	s.Outcomes = nil
	s.Inputs = make(map[int]string)
}

// Result builds the evaluation of a completed run.
func (s *QuizSession) Result() *QuizResult {
	res := &QuizResult{
		Questions: make([]QuestionResult, 0, len(s.Items)),
	}
	for i, it := range s.Items {
		correct := i < len(s.Outcomes) && s.Outcomes[i]
		if correct {
			res.Correct++
		} else {
			res.Incorrect++
		}
		res.Questions = append(res.Questions, QuestionResult{
			German:    it.German,
			English:   it.English,
			UserInput: s.Inputs[i],
			Correct:   correct,
		})
	}
	return res
}
