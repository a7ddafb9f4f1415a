package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

func generateItems(category string, n int) []entities.Item {
	items := make([]entities.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entities.Item{
			Category: category,
			German:   fmt.Sprintf("Wort%d", i),
			English:  fmt.Sprintf("word%d", i),
		})
	}
	return items
}

func TestQuizService_Start_NoCategorySelected(t *testing.T) {
	store := &fakeStore{items: generateItems("Obst", 5)}
	svc := NewQuizService(store, NewGrader(), 25)

	_, err := svc.Start(nil)
	assert.ErrorIs(t, err, ErrNoCategorySelected)
}

func TestQuizService_Start_NoEligibleItems(t *testing.T) {
	store := &fakeStore{items: []entities.Item{
		{Category: "Obst", German: "Quitte", English: ""},
	}}
	svc := NewQuizService(store, NewGrader(), 25)

	_, err := svc.Start([]string{"Obst"})
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestQuizService_Start_SampleSizes(t *testing.T) {
	tests := []struct {
		name     string
		eligible int
		want     int
	}{
		{name: "pool smaller than cap", eligible: 10, want: 10},
		{name: "pool larger than cap", eligible: 40, want: 25},
		{name: "pool equals cap", eligible: 25, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{items: generateItems("Obst", tt.eligible)}
			svc := NewQuizService(store, NewGrader(), 25)

			sess, err := svc.Start([]string{"Obst"})
			require.NoError(t, err)
			require.Len(t, sess.Items, tt.want)

			// Sampling is without replacement: no duplicates.
			seen := make(map[string]struct{}, len(sess.Items))
			for _, it := range sess.Items {
				_, dup := seen[it.German]
				assert.False(t, dup, "duplicate item %s in sample", it.German)
				seen[it.German] = struct{}{}
			}
		})
	}
}

func TestQuizService_Start_FiltersUntrainableRows(t *testing.T) {
	items := generateItems("Obst", 3)
	items = append(items,
		entities.Item{Category: "Obst", German: "Quitte", English: ""},
		entities.Item{Category: "Obst", German: "", English: "medlar"},
		entities.Item{Category: "Tiere", German: "Hund", English: "dog"},
	)
	store := &fakeStore{items: items}
	svc := NewQuizService(store, NewGrader(), 25)

	sess, err := svc.Start([]string{"Obst"})
	require.NoError(t, err)
	assert.Len(t, sess.Items, 3)
	for _, it := range sess.Items {
		assert.Equal(t, "Obst", it.Category)
		assert.True(t, it.Trainable())
	}
}

func TestQuizService_FullRun(t *testing.T) {
	store := &fakeStore{items: generateItems("Obst", 5)}
	svc := NewQuizService(store, NewGrader(), 25)

	sess, err := svc.Start([]string{"Obst"})
	require.NoError(t, err)
	require.Len(t, sess.Items, 5)

	// Answer three correctly, two wrong.
	for i := 0; i < 5; i++ {
		answer := sess.Current().English
		if i >= 3 {
			answer = "wrong"
		}
		correct, err := svc.Submit(sess, answer)
		require.NoError(t, err)
		assert.Equal(t, i < 3, correct)
	}

	require.True(t, sess.Completed())

	result, err := svc.Summary(sess)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 2, result.Incorrect)
	require.Len(t, result.Questions, 5)

	// Evaluation lines come back in sampled order with the raw input.
	for i, q := range result.Questions {
		assert.Equal(t, sess.Items[i].German, q.German)
		assert.Equal(t, sess.Items[i].English, q.English)
		assert.Equal(t, i < 3, q.Correct)
		if i >= 3 {
			assert.Equal(t, "wrong", q.UserInput)
		}
	}

	// Test mode never touches long-term statistics.
	assert.Empty(t, store.recorded)

	_, err = svc.Submit(sess, "anything")
	assert.ErrorIs(t, err, ErrQuizFinished)
}

func TestQuizService_Summary_BeforeCompletion(t *testing.T) {
	store := &fakeStore{items: generateItems("Obst", 5)}
	svc := NewQuizService(store, NewGrader(), 25)

	sess, err := svc.Start([]string{"Obst"})
	require.NoError(t, err)

	_, err = svc.Summary(sess)
	assert.ErrorIs(t, err, ErrQuizNotFinished)
}

func TestQuizService_Reset_ReplaysSameSample(t *testing.T) {
	store := &fakeStore{items: generateItems("Obst", 8)}
	svc := NewQuizService(store, NewGrader(), 5)

	sess, err := svc.Start([]string{"Obst"})
	require.NoError(t, err)
	sampled := append([]entities.Item(nil), sess.Items...)

	for !sess.Completed() {
		_, err := svc.Submit(sess, "wrong")
		require.NoError(t, err)
	}

	sess.Reset()

	assert.Equal(t, 0, sess.Position)
	assert.Empty(t, sess.Outcomes)
	assert.Empty(t, sess.Inputs)
	assert.Equal(t, sampled, sess.Items, "reset replays the identical questions")
	assert.False(t, sess.Completed())
}

func TestQuizService_SizeFallback(t *testing.T) {
	store := &fakeStore{items: generateItems("Obst", 40)}
	svc := NewQuizService(store, NewGrader(), 0)

	sess, err := svc.Start([]string{"Obst"})
	require.NoError(t, err)
	assert.Len(t, sess.Items, DefaultQuizSize)
}
