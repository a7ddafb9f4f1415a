package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

type recordedOutcome struct {
	idx     int
	correct bool
}

// fakeStore is an in-memory VocabStore for service tests.
type fakeStore struct {
	items    []entities.Item
	recorded []recordedOutcome
	saveErr  error
}

func (f *fakeStore) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range f.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

func (f *fakeStore) ItemsByCategory(category string) []entities.Item {
	var out []entities.Item
	for _, it := range f.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (f *fakeStore) TrainableByCategories(categories []string) []entities.Item {
	selected := make(map[string]struct{})
	for _, c := range categories {
		selected[c] = struct{}{}
	}
	var out []entities.Item
	for _, it := range f.items {
		if _, ok := selected[it.Category]; ok && it.Trainable() {
			out = append(out, it)
		}
	}
	return out
}

func (f *fakeStore) FindByKey(german, category string) (int, bool) {
	for i, it := range f.items {
		if it.German == german && it.Category == category {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeStore) RecordOutcome(idx int, correct bool) error {
	if correct {
		f.items[idx].CorrectCount++
	} else {
		f.items[idx].IncorrectCount++
	}
	f.recorded = append(f.recorded, recordedOutcome{idx: idx, correct: correct})
	return f.saveErr
}

func obstItems() []entities.Item {
	return []entities.Item{
		{Category: "Obst", German: "Apfel", English: "apple"},
		{Category: "Obst", German: "Birne", English: "pear"},
		{Category: "Obst", German: "Kirsche", English: "cherry"},
		{Category: "Tiere", German: "Hund", English: "dog"},
	}
}

func TestTrainingService_Start(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)
	assert.Equal(t, entities.StateAwaitingAnswer, sess.State)
	assert.Equal(t, 3, sess.Total)
	assert.GreaterOrEqual(t, sess.CurrentIndex, 0)
	assert.Less(t, sess.CurrentIndex, 3)
	assert.Empty(t, sess.Asked)
	assert.Nil(t, sess.LastCorrect)
}

func TestTrainingService_Start_EmptyCategory(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	_, err := svc.Start("Gemüse")
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestTrainingService_Submit_RecordsOutcomeOnce(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)
	item, err := svc.Current(sess)
	require.NoError(t, err)

	correct, err := svc.Submit(sess, " "+item.English+" ")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, entities.StateAnswerShown, sess.State)
	require.NotNil(t, sess.LastCorrect)
	assert.True(t, *sess.LastCorrect)
	require.Len(t, store.recorded, 1)
	assert.True(t, store.recorded[0].correct)

	// A second submission while the answer is shown is a no-op: same
	// result, no second count.
	correct, err = svc.Submit(sess, "complete nonsense")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Len(t, store.recorded, 1)
}

func TestTrainingService_Submit_Incorrect(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)

	correct, err := svc.Submit(sess, "definitely wrong")
	require.NoError(t, err)
	assert.False(t, correct)
	require.Len(t, store.recorded, 1)
	assert.False(t, store.recorded[0].correct)
}

func TestTrainingService_Submit_PersistFailureKeepsResult(t *testing.T) {
	store := &fakeStore{items: obstItems(), saveErr: errors.New("disk full")}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)
	item, err := svc.Current(sess)
	require.NoError(t, err)

	correct, err := svc.Submit(sess, item.English)
	assert.Error(t, err)
	assert.True(t, correct)
	// The session keeps the grading result and the in-memory counter
	// stays incremented even though the save failed.
	assert.Equal(t, entities.StateAnswerShown, sess.State)
	assert.Equal(t, 1, store.items[store.recorded[0].idx].CorrectCount)
}

func TestTrainingService_Advance(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)

	const k = 10
	for i := 0; i < k; i++ {
		svc.Advance(sess)
		assert.Equal(t, entities.StateAwaitingAnswer, sess.State)
		assert.Nil(t, sess.LastCorrect)
		assert.False(t, sess.ShowExamples)
	}

	// Drawing with replacement: at most k distinct indices, all in range.
	assert.LessOrEqual(t, len(sess.Asked), k)
	assert.LessOrEqual(t, len(sess.Asked), sess.Total)
	for idx := range sess.Asked {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, sess.Total)
	}

	p := sess.Progress()
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
	assert.InDelta(t, float64(len(sess.Asked))/float64(sess.Total), p, 1e-9)
}

func TestTrainingService_ResetProgress(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)

	item, err := svc.Current(sess)
	require.NoError(t, err)
	_, err = svc.Submit(sess, item.English)
	require.NoError(t, err)
	svc.Advance(sess)
	require.NotEmpty(t, sess.Asked)

	before := sess.CurrentIndex
	sess.ResetProgress()

	assert.Empty(t, sess.Asked)
	assert.Equal(t, before, sess.CurrentIndex)
	assert.Zero(t, sess.Progress())
	// Stored statistics are untouched by a progress reset.
	assert.Len(t, store.recorded, 1)
}

func TestTrainingService_Current_WrapsShrunkIndex(t *testing.T) {
	store := &fakeStore{items: obstItems()}
	svc := NewTrainingService(store, NewGrader())

	sess, err := svc.Start("Obst")
	require.NoError(t, err)
	sess.CurrentIndex = 99

	item, err := svc.Current(sess)
	require.NoError(t, err)
	assert.Equal(t, "Apfel", item.German)
	assert.Equal(t, 0, sess.CurrentIndex)
}
