package entities

import "strings"

// MaxExamplePairs is the number of example sentence slots per vocabulary item.
const MaxExamplePairs = 3

// ExamplePair holds one example sentence in both languages.
// The English side may be empty when no translation is recorded.
type ExamplePair struct {
	German  string
	English string
}

// Item represents a single vocabulary entry with its cumulative statistics.
// Identity within the dataset is the (German, Category) pair.
type Item struct {
	Category       string        // category the item is drilled under
	German         string        // source text shown to the learner
	English        string        // expected translation
	Examples       []ExamplePair // up to MaxExamplePairs example sentences
	CorrectCount   int           // cumulative correct answers
	IncorrectCount int           // cumulative incorrect answers
}

// Trainable reports whether the item has both source and target text and can
// be drawn into a quiz pool.
func (it Item) Trainable() bool {
	return strings.TrimSpace(it.German) != "" && strings.TrimSpace(it.English) != ""
}

// ExamplesWithText returns the example pairs that have a German sentence.
func (it Item) ExamplesWithText() []ExamplePair {
	out := make([]ExamplePair, 0, len(it.Examples))
	for _, ex := range it.Examples {
		if strings.TrimSpace(ex.German) != "" {
			out = append(out, ex)
		}
	}
	return out
}
