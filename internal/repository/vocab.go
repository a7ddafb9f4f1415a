package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/mlindner/vokabeltrainer-bot/internal/domain/entities"
)

var (
	ErrMissingColumns = errors.New("vocabulary sheet is missing required columns")
	ErrRowOutOfRange  = errors.New("row index out of range")
)

// Required column headers of the backing workbook.
const (
	colCategory = "Kategorie"
	colGerman   = "Deutsch"
	colEnglish  = "Englisch"
	colCorrect  = "Richtig"
	colWrong    = "Falsch"
)

// header is the canonical column order written back on save.
var header = []string{
	colCategory, colGerman, colEnglish, colCorrect, colWrong,
	"DE_1", "EN_1", "DE_2", "EN_2", "DE_3", "EN_3",
}

// VocabRepository owns the tabular vocabulary dataset backed by an Excel
// workbook. Every statistics update rewrites the whole sheet (write-through,
// best-effort durability: a failed save keeps the in-memory counters).
type VocabRepository struct {
	mu    sync.Mutex
	path  string
	sheet string
	items []entities.Item
}

// NewVocabRepository loads the workbook at path. The first sheet is used.
// Header cells are matched by name, so column order in the file is free.
func NewVocabRepository(path string) (*VocabRepository, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMissingColumns)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet %q", ErrMissingColumns, sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colCategory, colGerman, colEnglish} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumns, required)
		}
	}

	items := make([]entities.Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		items = append(items, parseRow(row, cols))
	}

	return &VocabRepository{
		path:  path,
		sheet: sheet,
		items: items,
	}, nil
}

func parseRow(row []string, cols map[string]int) entities.Item {
	it := entities.Item{
		Category:       cell(row, cols, colCategory),
		German:         cell(row, cols, colGerman),
		English:        cell(row, cols, colEnglish),
		CorrectCount:   count(cell(row, cols, colCorrect)),
		IncorrectCount: count(cell(row, cols, colWrong)),
	}
	for i := 1; i <= entities.MaxExamplePairs; i++ {
		it.Examples = append(it.Examples, entities.ExamplePair{
			German:  cell(row, cols, fmt.Sprintf("DE_%d", i)),
			English: cell(row, cols, fmt.Sprintf("EN_%d", i)),
		})
	}
	return it
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// count parses a counter cell. Blank or malformed cells count as zero.
func count(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Categories returns the distinct non-empty categories in row order.
func (r *VocabRepository) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{})
	var out []string
	for _, it := range r.items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// ItemsByCategory returns the selectable rows of the category in dataset
// order. Rows missing source or target text stay in the dataset for
// persistence but never enter a drill pool.
func (r *VocabRepository) ItemsByCategory(category string) []entities.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Item
	for _, it := range r.items {
		if it.Category == category && it.Trainable() {
			out = append(out, it)
		}
	}
	return out
}

// TrainableByCategories returns the quiz pool: rows whose category is in
// categories and which carry both source and target text.
func (r *VocabRepository) TrainableByCategories(categories []string) []entities.Item {
	selected := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		selected[c] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Item
	for _, it := range r.items {
		if _, ok := selected[it.Category]; !ok {
			continue
		}
		if it.Trainable() {
			out = append(out, it)
		}
	}
	return out
}

// FindByKey returns the dataset index of the first row matching the
// (german, category) pair. With duplicate keys the first row wins; the
// dataset is expected to keep the pair unique.
func (r *VocabRepository) FindByKey(german, category string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.German == german && it.Category == category {
			return i, true
		}
	}
	return 0, false
}

// RecordOutcome increments the correct or incorrect counter of the row at
// idx and writes the dataset back. On a failed write the in-memory counter
// stays incremented and the error is returned to the caller.
func (r *VocabRepository) RecordOutcome(idx int, correct bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx < 0 || idx >= len(r.items) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, idx)
	}

	if correct {
		r.items[idx].CorrectCount++
	} else {
		r.items[idx].IncorrectCount++
	}

	return r.save()
}

// Save rewrites the whole workbook from the in-memory dataset.
func (r *VocabRepository) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save()
}

func (r *VocabRepository) save() error {
	f := excelize.NewFile()
	defer f.Close()

	if r.sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", r.sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	row := make([]interface{}, len(header))
	for i, name := range header {
		row[i] = name
	}
	if err := f.SetSheetRow(r.sheet, "A1", &row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, it := range r.items {
		row := []interface{}{
			it.Category, it.German, it.English,
			it.CorrectCount, it.IncorrectCount,
		}
		for j := 0; j < entities.MaxExamplePairs; j++ {
			var ex entities.ExamplePair
			if j < len(it.Examples) {
				ex = it.Examples[j]
			}
			row = append(row, ex.German, ex.English)
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(r.sheet, cellName, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("save vocabulary file: %w", err)
	}
	return nil
}
