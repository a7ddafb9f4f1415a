package service

import (
	"strings"
)

// Grader compares a learner's answer to the expected translation.
// Matching is exact after normalization: no partial credit, no edit-distance
// tolerance, no synonyms.
type Grader struct{}

// NewGrader creates a new Grader.
func NewGrader() *Grader {
	return &Grader{}
}

// Grade reports whether answer matches expected. Both sides are trimmed of
// surrounding whitespace and lower-cased before comparison. Grade is pure;
// recording the outcome is the caller's job.
func (g *Grader) Grade(answer, expected string) bool {
	return normalize(answer) == normalize(expected)
}

// normalize prepares a string for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
