// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

// Error and hint messages.
const (
	msgWelcome = "📘 Willkommen beim Vokabeltrainer!\n\n" +
		"/training — Kategorie wählen und Vokabeln üben\n" +
		"/test — Test mit bis zu 25 Fragen starten\n" +
		"/fortschritt — Fortschritt der aktuellen Kategorie\n" +
		"/hilfe — Hilfe anzeigen"
	msgHelp = "So funktioniert der Trainer:\n\n" +
		"🏋️ <b>Training</b>: Du bekommst ein deutsches Wort und tippst die englische Übersetzung. " +
		"Richtig/Falsch wird dauerhaft pro Vokabel gezählt.\n\n" +
		"🎓 <b>Test</b>: Wähle Kategorien aus, beantworte bis zu 25 zufällige Fragen " +
		"und bekomme am Ende eine Auswertung. Der Test verändert die Statistik nicht.\n\n" +
		"Antworten werden ohne Groß-/Kleinschreibung verglichen."
	msgNoVocabFile        = "Die Vokabeldatei konnte nicht geladen werden."
	msgEmptyCategory      = "⚠️ Keine Vokabeln in dieser Kategorie gefunden."
	msgNoCategories       = "⚠️ Die Vokabeldatei enthält keine Kategorien."
	msgNoCategorySelected = "Bitte wähle mindestens eine Kategorie für den Test aus."
	msgNoQuizQuestions    = "In den gewählten Kategorien gibt es keine vollständigen Vokabeln."
	msgNoActiveTraining   = "Kein aktives Training. Starte mit /training."
	msgStatsNotSaved      = "⚠️ Die Statistik konnte nicht gespeichert werden."
	msgNoExamples         = "⚠️ Keine Übersetzung vorhanden."
	msgProgressReset      = "🔁 Fortschritt dieser Kategorie wurde zurückgesetzt."
	msgInternalError      = "Etwas ist schiefgelaufen. Versuche es später erneut."
	msgUnknownCommand     = "Unbekannter Befehl. Verfügbare Befehle:\n\n" +
		"/training — Vokabeln üben\n/test — Test starten\n/fortschritt — Fortschritt anzeigen\n/hilfe — Hilfe"
)

const vocabPerPage = 10

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}

// formatQuestion renders the current free-drill question with the German
// example sentences and the category progress.
func formatQuestion(item entities.Item, sess *entities.TrainingSession) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏋️ <b>Training – %s</b>\n\n", esc(sess.Category))
	fmt.Fprintf(&b, "Übersetze: <b>%s</b>\n", esc(item.German))

	if examples := formatExamples(item, sess.ShowExamples); examples != "" {
		b.WriteString("\n" + examples)
	}

	asked := len(sess.Asked)
	fmt.Fprintf(&b, "\n📈 %s\n%d von %d Vokabeln abgefragt",
		buildProgressBar(asked, sess.Total, 20), asked, sess.Total)

	return b.String()
}

// formatExamples renders the example sentences of an item. Translations are
// included only once the learner revealed them.
func formatExamples(item entities.Item, revealed bool) string {
	examples := item.ExamplesWithText()
	if len(examples) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🔴 <b>Beispielsätze</b>\n")
	for _, ex := range examples {
		fmt.Fprintf(&b, "▫️ %s\n", esc(ex.German))
		if !revealed {
			continue
		}
		if strings.TrimSpace(ex.English) == "" {
			b.WriteString("   " + msgNoExamples + "\n")
		} else {
			fmt.Fprintf(&b, "   💬 <i>%s</i>\n", esc(ex.English))
		}
	}
	return b.String()
}

// formatFeedback renders the grading result of a free-drill answer together
// with the cumulative statistics of the item.
func formatFeedback(item entities.Item, correct bool) string {
	var b strings.Builder

	if correct {
		b.WriteString("✅ Deine Antwort ist korrekt!\n")
	} else {
		fmt.Fprintf(&b, "❌ Leider falsch – richtig wäre: <b>%s</b>\n", esc(item.English))
	}

	b.WriteString("\n📊 <b>Statistik zu dieser Vokabel</b>\n")
	total := item.CorrectCount + item.IncorrectCount
	if total == 0 {
		b.WriteString("Zu dieser Vokabel gibt es noch keine Statistik.")
	} else {
		fmt.Fprintf(&b, "%s\n✅ Richtig: %d   ❌ Falsch: %d",
			buildProgressBar(item.CorrectCount, total, 20),
			item.CorrectCount, item.IncorrectCount)
	}

	return b.String()
}

// formatQuizQuestion renders one test question.
func formatQuizQuestion(sess *entities.QuizSession) string {
	return fmt.Sprintf("🎓 Frage %d/%d – Übersetze: <b>%s</b>",
		sess.Position+1, len(sess.Items), esc(sess.Current().German))
}

// formatQuizResult renders the final evaluation of a completed test run.
func formatQuizResult(result *entities.QuizResult) string {
	var b strings.Builder

	total := result.Correct + result.Incorrect
	b.WriteString("🎉 <b>Test abgeschlossen!</b>\n\n")
	fmt.Fprintf(&b, "Ergebnis: <b>%d/%d richtig</b>\n%s\n",
		result.Correct, total, buildProgressBar(result.Correct, total, 20))

	b.WriteString("\n📋 <b>Detailauswertung</b>\n")
	for _, q := range result.Questions {
		if q.Correct {
			fmt.Fprintf(&b, "✅ %s ➜ %s\n", esc(q.German), esc(q.English))
		} else {
			fmt.Fprintf(&b, "❌ %s ➜ %s\n   <i>Deine Antwort:</i> %s\n",
				esc(q.German), esc(q.English), esc(q.UserInput))
		}
	}

	return b.String()
}

// formatTrainingProgress renders the progress screen of a drill session.
func formatTrainingProgress(sess *entities.TrainingSession) string {
	asked := len(sess.Asked)
	return fmt.Sprintf(
		"📈 <b>Fortschritt – %s</b>\n\n%s\n%d von %d Vokabeln in dieser Kategorie abgefragt (%.0f%%)",
		esc(sess.Category),
		buildProgressBar(asked, sess.Total, 20),
		asked, sess.Total,
		sess.Progress()*100,
	)
}
