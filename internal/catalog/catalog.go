// Package catalog holds the static questionnaire configuration: the
// ordered question list, the gift definitions that aggregate them, the
// rating scale, and pagination constants. Loaded once, never mutated.
package catalog

import "github.com/acampos/giftwise/internal/i18n"

// QuestionsPerPage is the fixed page size for the questionnaire form.
const QuestionsPerPage = 6

// TopGiftCount is how many highest-scoring gifts make up the primary set.
const TopGiftCount = 3

// Question is a single questionnaire item.
type Question struct {
	ID   int
	Text i18n.Text
}

// GiftDefinition is one scored trait: a named cluster of question ids.
// Declaration order in Gifts is the tie-break order for ranking.
type GiftDefinition struct {
	ID          string
	Name        i18n.Text
	Description i18n.Text
	Questions   []int
}

// RatingLabel describes one value of the 1–5 answer scale.
type RatingLabel struct {
	Value       int
	Description i18n.Text
}

// TotalPages returns the number of questionnaire pages.
func TotalPages() int {
	n := len(Questions)
	return (n + QuestionsPerPage - 1) / QuestionsPerPage
}

// Page returns the questions on the given zero-based page index.
// Out-of-range indexes return an empty slice.
func Page(index int) []Question {
	start := index * QuestionsPerPage
	if start < 0 || start >= len(Questions) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(Questions) {
		end = len(Questions)
	}
	return Questions[start:end]
}

// GiftByID looks up a gift definition by id. Second return is false for
// unknown ids (e.g. an id read back from an older stored document).
func GiftByID(id string) (GiftDefinition, bool) {
	for _, g := range Gifts {
		if g.ID == id {
			return g, true
		}
	}
	return GiftDefinition{}, false
}
