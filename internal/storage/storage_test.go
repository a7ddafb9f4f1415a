package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

func TestTrainingStorage_PerCategorySessions(t *testing.T) {
	s := NewTrainingStorage()
	const chatID = int64(42)

	_, ok := s.Active(chatID)
	assert.False(t, ok)

	obst := entities.NewTrainingSession("Obst", 3, 0)
	obst.Asked[1] = struct{}{}
	s.Store(chatID, obst)

	active, ok := s.Active(chatID)
	require.True(t, ok)
	assert.Same(t, obst, active)

	// Switching to another category keeps the first session around.
	tiere := entities.NewTrainingSession("Tiere", 5, 2)
	s.Store(chatID, tiere)

	active, ok = s.Active(chatID)
	require.True(t, ok)
	assert.Same(t, tiere, active)

	back, ok := s.Get(chatID, "Obst")
	require.True(t, ok)
	assert.Same(t, obst, back)
	assert.Contains(t, back.Asked, 1, "asked-set survives a category switch")

	// Chats do not see each other's sessions.
	_, ok = s.Get(int64(7), "Obst")
	assert.False(t, ok)

	s.Delete(chatID)
	_, ok = s.Active(chatID)
	assert.False(t, ok)
}

func TestQuizStorage_Sessions(t *testing.T) {
	s := NewQuizStorage()
	const chatID = int64(42)

	_, ok := s.Get(chatID)
	assert.False(t, ok)

	sess := entities.NewQuizSession([]string{"Obst"}, nil)
	s.Store(chatID, sess)

	got, ok := s.Get(chatID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	s.Delete(chatID)
	_, ok = s.Get(chatID)
	assert.False(t, ok)
}

func TestQuizStorage_PendingSelection(t *testing.T) {
	s := NewQuizStorage()
	const chatID = int64(42)
	order := []string{"Obst", "Tiere", "Verben"}

	assert.True(t, s.TogglePending(chatID, "Tiere"))
	assert.True(t, s.TogglePending(chatID, "Obst"))
	assert.True(t, s.PendingSelected(chatID, "Obst"))
	assert.False(t, s.PendingSelected(chatID, "Verben"))

	// Selection comes back in the given category order, not toggle order.
	assert.Equal(t, []string{"Obst", "Tiere"}, s.Pending(chatID, order))

	assert.False(t, s.TogglePending(chatID, "Tiere"))
	assert.Equal(t, []string{"Obst"}, s.Pending(chatID, order))

	s.ClearPending(chatID)
	assert.Empty(t, s.Pending(chatID, order))
}
