package telegram

import (
	"fmt"
	"strings"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

// buildVocabPage renders one page of the category's vocabulary list and
// returns the total page count. Rows without a translation are hidden from
// the list, matching the drill pool display.
func buildVocabPage(category string, items []entities.Item, page int) (string, int) {
	visible := make([]entities.Item, 0, len(items))
	for _, it := range items {
		if it.Trainable() {
			visible = append(visible, it)
		}
	}

	totalPages := (len(visible) + vocabPerPage - 1) / vocabPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * vocabPerPage
	end := start + vocabPerPage
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📄 <b>Vokabeln – %s</b> (Seite %d/%d)\n\n", esc(category), page+1, totalPages)
	for _, it := range visible[start:end] {
		fmt.Fprintf(&b, "🇩🇪 <b>%s</b> — 🇬🇧 %s\n", esc(it.German), esc(it.English))
	}

	return b.String(), totalPages
}
