package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
	"github.com/mlindner/vokabeltrainer-bot/internal/service"
)

// handleStart greets the learner and lists the available commands.
func (h *Handler) handleStart() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgWelcome))
	}
}

// handleTraining shows the category picker for the free drill.
func (h *Handler) handleTraining() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		categories := h.vocab.Categories()
		if len(categories) == 0 {
			return h.send(newPlainMessage(chatID, msgNoCategories))
		}

		msg := newPlainMessage(chatID, "🏋️ Kategorie auswählen:")
		msg.ReplyMarkup = buildCategoryKeyboard(categories)
		return h.send(msg)
	}
}

// handleTest resumes a running test or shows the category multi-select.
func (h *Handler) handleTest() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if sess, ok := h.quizStore.Get(chatID); ok && !sess.Completed() {
			return h.sendQuizQuestion(chatID, sess)
		}

		categories := h.vocab.Categories()
		if len(categories) == 0 {
			return h.send(newPlainMessage(chatID, msgNoCategories))
		}

		msg := newPlainMessage(chatID, "🎓 Wähle die Kategorien für den Test:")
		msg.ReplyMarkup = buildQuizSelectionKeyboard(categories, func(cat string) bool {
			return h.quizStore.PendingSelected(chatID, cat)
		})
		return h.send(msg)
	}
}

// handleProgress renders the progress screen of the active drill session.
func (h *Handler) handleProgress() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		sess, ok := h.trainingStore.Active(chatID)
		if !ok {
			return h.send(newPlainMessage(chatID, msgNoActiveTraining))
		}

		msg := newHTMLMessage(chatID, formatTrainingProgress(sess))
		msg.ReplyMarkup = buildProgressKeyboard()
		return h.send(msg)
	}
}

// handleAnswer routes a plain text message to the mode waiting for input.
// A running test takes precedence over a drill session.
func (h *Handler) handleAnswer(text string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if sess, ok := h.quizStore.Get(chatID); ok && !sess.Completed() {
			return h.submitQuizAnswer(chatID, sess, text)
		}

		if sess, ok := h.trainingStore.Active(chatID); ok {
			return h.submitTrainingAnswer(chatID, sess, text)
		}

		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}
}

// submitTrainingAnswer grades a drill answer and shows the result with the
// item's cumulative statistics.
func (h *Handler) submitTrainingAnswer(chatID int64, sess *entities.TrainingSession, text string) error {
	correct, err := h.trainingService.Submit(sess, text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCategory) {
			return h.send(newPlainMessage(chatID, msgEmptyCategory))
		}
		// Write-back failed. The answer is graded and counted in memory,
		// so show the result and tell the learner about the lost save.
		h.logger.Error("failed to persist statistics",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgStatsNotSaved)
	}

	item, err := h.trainingService.Current(sess)
	if err != nil {
		return err
	}

	msg := newHTMLMessage(chatID, formatFeedback(item, correct))
	msg.ReplyMarkup = buildQuestionKeyboard(len(item.ExamplesWithText()) > 0)
	return h.send(msg)
}

// submitQuizAnswer grades a test answer and shows either the next question
// or the final evaluation.
func (h *Handler) submitQuizAnswer(chatID int64, sess *entities.QuizSession, text string) error {
	if _, err := h.quizService.Submit(sess, text); err != nil {
		return err
	}

	if !sess.Completed() {
		return h.sendQuizQuestion(chatID, sess)
	}

	result, err := h.quizService.Summary(sess)
	if err != nil {
		return err
	}

	msg := newHTMLMessage(chatID, formatQuizResult(result))
	msg.ReplyMarkup = buildQuizResultKeyboard()
	return h.send(msg)
}

// sendQuestion renders the current drill question.
func (h *Handler) sendQuestion(chatID int64, sess *entities.TrainingSession) error {
	item, err := h.trainingService.Current(sess)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCategory) {
			return h.send(newPlainMessage(chatID, msgEmptyCategory))
		}
		return err
	}

	msg := newHTMLMessage(chatID, formatQuestion(item, sess))
	msg.ReplyMarkup = buildQuestionKeyboard(len(item.ExamplesWithText()) > 0)
	return h.send(msg)
}

// sendQuizQuestion renders the current test question.
func (h *Handler) sendQuizQuestion(chatID int64, sess *entities.QuizSession) error {
	return h.send(newHTMLMessage(chatID, formatQuizQuestion(sess)))
}
