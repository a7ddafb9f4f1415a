package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// buildCategoryKeyboard builds the category picker for the free drill.
// Categories are referenced by index, category names do not fit into the
// 64-byte callback data limit.
func buildCategoryKeyboard(categories []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for i, cat := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat, buildTrainingCallback(trainingCategory, strconv.Itoa(i))),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildQuizSelectionKeyboard builds the multi-select category keyboard for
// the test mode. Selected categories carry a check mark.
func buildQuizSelectionKeyboard(categories []string, selected func(string) bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+1)
	for i, cat := range categories {
		label := cat
		if selected(cat) {
			label = "✅ " + cat
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizCallback(quizToggle, strconv.Itoa(i))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎯 Test starten", buildQuizCallback(quizStart)),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildQuestionKeyboard builds the keyboard shown under a drill question.
func buildQuestionKeyboard(hasExamples bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Nächste Vokabel", buildTrainingCallback(trainingNext)),
		),
	}
	if hasExamples {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Übersetzungen anzeigen", buildTrainingCallback(trainingExamples)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📄 Vokabelliste", buildTrainingCallback(trainingList, "0")),
		tgbotapi.NewInlineKeyboardButtonData("🔁 Zurücksetzen", buildTrainingCallback(trainingReset)),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildProgressKeyboard builds the keyboard for the progress screen.
func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Aktualisieren", buildTrainingCallback(trainingProgress)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Fortschritt zurücksetzen", buildTrainingCallback(trainingReset)),
		),
	)
}

// buildQuizResultKeyboard builds the keyboard under a finished test run.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Test zurücksetzen", buildQuizCallback(quizReset)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🆕 Neuer Test", buildQuizCallback(quizNew)),
		),
	)
}

// buildPageKeyboard builds pagination keyboard for the vocabulary list.
func buildPageKeyboard(page, totalPages int, prevData, nextData string) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Zurück", prevData))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Weiter ▶️", nextData))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}
	return &kb
}
