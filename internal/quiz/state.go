package quiz

import (
	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
)

// State is the full session state, treated as an immutable value: every
// transition returns a new State instead of mutating shared fields, so
// transitions are independently testable.
type State struct {
	// Step is the current application step.
	Step Step

	// Name and Email identify the active respondent.
	Name  string
	Email string

	// Answers maps question id to its 1–5 rating.
	Answers map[int]int

	// Page is the zero-based questionnaire page index.
	Page int

	// Result is the active in-memory questionnaire result, nil until a
	// submission completes or a stored result is loaded by email.
	Result *UserResult

	// Plan is the loaded development plan, nil outside the guide.
	Plan *plan.Data

	// SaveError annotates a failed result append; results stay viewable.
	SaveError *i18n.Text

	// PlanLoadError and PlanSaveError surface plan store failures.
	PlanLoadError *i18n.Text
	PlanSaveError *i18n.Text

	// Notice is a general informational message shown after a redirect.
	Notice *i18n.Text

	// PlanLoading and PlanSaving gate the corresponding async operation:
	// while set, the triggering action is disabled so no duplicate
	// request of the same kind is ever in flight.
	PlanLoading bool
	PlanSaving  bool
}

// NewState returns the initial state at the Welcome step.
func NewState() State {
	return State{Step: StepWelcome, Answers: map[int]int{}}
}

// withAnswers returns a copy of s with a fresh copy of the answer map,
// so transitions never alias a previous state's map.
func (s State) withAnswers() State {
	answers := make(map[int]int, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	s.Answers = answers
	return s
}

// PageQuestions returns the questions on the current page.
func (s State) PageQuestions() []catalog.Question {
	return catalog.Page(s.Page)
}

// PageAnswered reports whether every question on the current page has an
// answer.
func (s State) PageAnswered() bool {
	for _, q := range s.PageQuestions() {
		if _, ok := s.Answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// AllAnswered reports whether every question on every page has an
// answer. Submission is re-checked against this, not just the current
// page, guarding against navigating backward and un-answering.
func (s State) AllAnswered() bool {
	return len(s.Answers) == len(catalog.Questions)
}

// LastPage reports whether the current page is the final one.
func (s State) LastPage() bool {
	return s.Page == catalog.TotalPages()-1
}
