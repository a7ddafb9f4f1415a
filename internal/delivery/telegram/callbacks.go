package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mlindner/vokabeltrainer-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionTraining:
		fn = h.trainingCallback(data, cb)
	case actionQuiz:
		fn = h.quizCallback(data, cb)
	default:
		return
	}

	h.withErrorHandling(fn)(ctx, chatID)

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) trainingCallback(data callbackData, cb *tgbotapi.CallbackQuery) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		switch data.param(0) {
		case trainingCategory:
			return h.selectCategory(chatID, data)
		case trainingNext:
			return h.nextQuestion(chatID)
		case trainingExamples:
			return h.revealExamples(chatID)
		case trainingReset:
			return h.resetProgress(chatID)
		case trainingList:
			return h.showVocabList(chatID, cb, data)
		case trainingProgress:
			return h.refreshProgress(chatID, cb)
		}
		return nil
	}
}

func (h *Handler) quizCallback(data callbackData, cb *tgbotapi.CallbackQuery) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.param(0) {
		case quizToggle:
			return h.toggleQuizCategory(chatID, cb, data)
		case quizStart:
			return h.startQuiz(chatID)
		case quizReset:
			return h.resetQuiz(ctx, chatID)
		case quizNew:
			return h.newQuiz(ctx, chatID)
		}
		return nil
	}
}

// selectCategory starts or resumes the drill session for the picked
// category. Resuming keeps the asked-set, so switching categories back and
// forth does not lose progress.
func (h *Handler) selectCategory(chatID int64, data callbackData) error {
	idx, ok := data.intParam(1)
	categories := h.vocab.Categories()
	if !ok || idx >= len(categories) {
		h.logger.Warn("invalid category callback", zap.String("data", data.Raw))
		return nil
	}
	category := categories[idx]

	sess, ok := h.trainingStore.Get(chatID, category)
	if !ok {
		var err error
		sess, err = h.trainingService.Start(category)
		if err != nil {
			if errors.Is(err, service.ErrEmptyCategory) {
				return h.send(newPlainMessage(chatID, msgEmptyCategory))
			}
			return err
		}
	}
	h.trainingStore.Store(chatID, sess)

	return h.sendQuestion(chatID, sess)
}

func (h *Handler) nextQuestion(chatID int64) error {
	sess, ok := h.trainingStore.Active(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}

	h.trainingService.Advance(sess)
	return h.sendQuestion(chatID, sess)
}

func (h *Handler) revealExamples(chatID int64) error {
	sess, ok := h.trainingStore.Active(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}

	sess.ShowExamples = true
	item, err := h.trainingService.Current(sess)
	if err != nil {
		return err
	}

	text := formatExamples(item, true)
	if text == "" {
		return h.send(newPlainMessage(chatID, msgNoExamples))
	}
	return h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) resetProgress(chatID int64) error {
	sess, ok := h.trainingStore.Active(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}

	sess.ResetProgress()

	msg := newHTMLMessage(chatID, msgProgressReset+"\n\n"+formatTrainingProgress(sess))
	return h.send(msg)
}

// showVocabList renders a page of the active category's vocabulary,
// editing the message in place when paging.
func (h *Handler) showVocabList(chatID int64, cb *tgbotapi.CallbackQuery, data callbackData) error {
	sess, ok := h.trainingStore.Active(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}

	page, ok := data.intParam(1)
	if !ok {
		h.logger.Warn("invalid list callback", zap.String("data", data.Raw))
		return nil
	}

	items := h.vocab.ItemsByCategory(sess.Category)
	text, totalPages := buildVocabPage(sess.Category, items, page)
	if text == "" {
		return h.send(newPlainMessage(chatID, msgEmptyCategory))
	}

	prevData := buildTrainingCallback(trainingList, strconv.Itoa(page-1))
	nextData := buildTrainingCallback(trainingList, strconv.Itoa(page+1))
	kb := buildPageKeyboard(page, totalPages, prevData, nextData)

	// First page opens as a fresh message, paging edits it in place.
	if page == 0 {
		msg := newHTMLMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	return h.send(edit)
}

func (h *Handler) refreshProgress(chatID int64, cb *tgbotapi.CallbackQuery) error {
	sess, ok := h.trainingStore.Active(chatID)
	if !ok {
		return h.send(newPlainMessage(chatID, msgNoActiveTraining))
	}

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, formatTrainingProgress(sess))
	edit.ParseMode = tgbotapi.ModeHTML
	kb := buildProgressKeyboard()
	edit.ReplyMarkup = &kb
	return h.send(edit)
}

// toggleQuizCategory flips a category in the pre-start selection and
// refreshes the check marks on the keyboard.
func (h *Handler) toggleQuizCategory(chatID int64, cb *tgbotapi.CallbackQuery, data callbackData) error {
	idx, ok := data.intParam(1)
	categories := h.vocab.Categories()
	if !ok || idx >= len(categories) {
		h.logger.Warn("invalid toggle callback", zap.String("data", data.Raw))
		return nil
	}

	h.quizStore.TogglePending(chatID, categories[idx])

	kb := buildQuizSelectionKeyboard(categories, func(cat string) bool {
		return h.quizStore.PendingSelected(chatID, cat)
	})
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, kb)
	return h.send(edit)
}

func (h *Handler) startQuiz(chatID int64) error {
	selected := h.quizStore.Pending(chatID, h.vocab.Categories())

	sess, err := h.quizService.Start(selected)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCategorySelected):
			return h.send(newPlainMessage(chatID, msgNoCategorySelected))
		case errors.Is(err, service.ErrNoQuestionsAvailable):
			return h.send(newPlainMessage(chatID, msgNoQuizQuestions))
		}
		return err
	}

	h.quizStore.Store(chatID, sess)
	return h.sendQuizQuestion(chatID, sess)
}

// resetQuiz replays the identical sample from the first question.
func (h *Handler) resetQuiz(ctx context.Context, chatID int64) error {
	sess, ok := h.quizStore.Get(chatID)
	if !ok {
		return h.handleTest()(ctx, chatID)
	}

	sess.Reset()
	return h.sendQuizQuestion(chatID, sess)
}

// newQuiz drops the current run and its category selection.
func (h *Handler) newQuiz(ctx context.Context, chatID int64) error {
	h.quizStore.Delete(chatID)
	h.quizStore.ClearPending(chatID)
	return h.handleTest()(ctx, chatID)
}
