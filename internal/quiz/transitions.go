package quiz

import (
	"strings"
	"time"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
)

// Transitions of the application state machine. Each returns a new State
// value; guarded transitions additionally return a user-facing warning
// and leave the state unchanged when the guard refuses.

// BeginQuiz moves Welcome → IdentifyForQuiz. Unconditional.
func (s State) BeginQuiz() State {
	s.Step = StepIdentifyForQuiz
	s.Notice = nil
	return s
}

// BeginDevelopment moves Welcome → IdentifyForDevelopment. Unconditional.
func (s State) BeginDevelopment() State {
	s.Step = StepIdentifyForDevelopment
	s.PlanLoadError = nil
	return s
}

// BackToWelcome returns to the Welcome step without clearing session
// state; Reset is the full clear.
func (s State) BackToWelcome() State {
	s.Step = StepWelcome
	s.Notice = nil
	return s
}

// StartQuiz validates the respondent identity and enters the Form step,
// resetting answers, results, and pagination.
func (s State) StartQuiz(name, email string) (State, *i18n.Text) {
	if !ValidName(name) {
		return s, &i18n.MsgNameRequired
	}
	if !ValidEmail(email) {
		return s, &i18n.MsgInvalidEmail
	}

	s.Name = strings.TrimSpace(name)
	s.Email = strings.TrimSpace(email)
	s.Answers = map[int]int{}
	s.Result = nil
	s.SaveError = nil
	s.Page = 0
	s.Notice = nil
	s.Step = StepForm
	return s, nil
}

// SetAnswer records a rating for a question. Ratings outside 1–5 and
// unknown question ids are ignored.
func (s State) SetAnswer(questionID, value int) State {
	if value < 1 || value > 5 {
		return s
	}
	if questionID < 1 || questionID > len(catalog.Questions) {
		return s
	}
	s = s.withAnswers()
	s.Answers[questionID] = value
	return s
}

// NextPage advances the questionnaire one page. Refused with a warning
// unless every question on the current page is answered. The last page
// does not advance; submission takes over there.
func (s State) NextPage() (State, *i18n.Text) {
	if !s.PageAnswered() {
		return s, &i18n.MsgAnswerAllOnPage
	}
	if s.Page < catalog.TotalPages()-1 {
		s.Page++
	}
	return s, nil
}

// PrevPage goes one page back. No guard.
func (s State) PrevPage() State {
	if s.Page > 0 {
		s.Page--
	}
	return s
}

// Calculate checks the global submission guard and computes the result
// synchronously, entering the Calculating step. The submission id and
// clock are injected so the transition stays deterministic under test.
func (s State) Calculate(submissionID string, now time.Time) (State, *i18n.Text) {
	if !s.AllAnswered() {
		return s, &i18n.MsgSomeAnswersMissing
	}
	if !s.PageAnswered() {
		return s, &i18n.MsgAnswerAllToView
	}

	scores := Score(s.Answers, catalog.Gifts)
	s.Result = &UserResult{
		SubmissionID: submissionID,
		Name:         s.Name,
		Email:        s.Email,
		TopGifts:     TopGifts(Rank(scores)),
		AllScores:    scores,
		CreatedAt:    now,
	}
	s.SaveError = nil
	s.Step = StepCalculating
	return s, nil
}

// BeginSaving enters the Saving step while the append is in flight.
func (s State) BeginSaving() State {
	s.Step = StepSaving
	return s
}

// FinishSave enters Results regardless of persistence outcome. A failure
// is recorded as a session-local annotation and never blocks viewing the
// scores.
func (s State) FinishSave(storeID int, saveErr *i18n.Text) State {
	if s.Result != nil {
		r := *s.Result
		r.ID = storeID
		r.SaveError = saveErr
		s.Result = &r
	}
	s.SaveError = saveErr
	s.Step = StepResults
	return s
}

// GoToGuide moves Results → DevelopmentGuide. Without an active result
// or email it redirects to IdentifyForDevelopment with an informational
// message instead. On success the plan load for the known identifier
// starts (PlanLoading set); the caller issues the store call.
func (s State) GoToGuide() State {
	if s.Email == "" || s.Result == nil {
		s.Step = StepIdentifyForDevelopment
		s.Notice = &i18n.MsgEnterEmailToLoadPlan
		return s
	}
	s.Step = StepDevelopmentGuide
	s.PlanLoading = true
	s.PlanLoadError = nil
	return s
}

// GoToResults moves DevelopmentGuide → Results, mirroring the GoToGuide
// guard: without an active result it redirects to IdentifyForQuiz with
// an informational message.
func (s State) GoToResults() State {
	if s.Result == nil {
		s.Step = StepIdentifyForQuiz
		s.Notice = &i18n.MsgNoResultsToDisplay
		return s
	}
	s.Step = StepResults
	return s
}

// BeginPlanLoadByEmail validates the email and starts the combined
// load: most recent result for the email, then the plan document. The
// caller issues the store calls; at most one load is in flight.
func (s State) BeginPlanLoadByEmail(email string) (State, *i18n.Text) {
	if !ValidEmail(email) {
		return s, &i18n.MsgInvalidEmail
	}
	if s.PlanLoading {
		return s, nil
	}
	s.Email = strings.TrimSpace(email)
	s.PlanLoading = true
	s.PlanLoadError = nil
	s.Notice = nil
	return s, nil
}

// CancelPlanLoad abandons an in-flight plan load without applying any
// outcome. Session.AbandonPlanLoad pairs this with a generation bump so
// the late completion cannot land.
func (s State) CancelPlanLoad() State {
	s.PlanLoading = false
	return s
}

// FinishPlanLoad applies the outcome of a plan load. On failure the step
// is unchanged and the error is surfaced; on success the guide is
// entered with the loaded result and plan.
func (s State) FinishPlanLoad(result *UserResult, p *plan.Data, loadErr *i18n.Text) State {
	s.PlanLoading = false
	if loadErr != nil {
		s.PlanLoadError = loadErr
		s.Plan = nil
		return s
	}
	if result != nil {
		s.Result = result
		s.Name = result.Name
	}
	s.Plan = p
	s.Step = StepDevelopmentGuide
	return s
}

// UpdatePlanField replaces one free-text field of the plan.
func (s State) UpdatePlanField(f plan.Field, value string) State {
	if s.Plan == nil {
		return s
	}
	updated := s.Plan.WithField(f, value)
	s.Plan = &updated
	return s
}

// TogglePlanCategory flips one category flag, leaving the others as they
// are.
func (s State) TogglePlanCategory(c plan.Category) State {
	if s.Plan == nil {
		return s
	}
	updated := s.Plan.WithCategory(c, !s.Plan.Category(c))
	s.Plan = &updated
	return s
}

// BeginPlanSave guards the explicit save: a loaded plan and a known
// identifier are required before any store call is issued.
func (s State) BeginPlanSave() (State, *i18n.Text) {
	if s.Plan == nil || s.Email == "" {
		return s, &i18n.MsgNoPlanOrEmailMissing
	}
	if s.PlanSaving {
		return s, nil
	}
	s.PlanSaving = true
	s.PlanSaveError = nil
	return s, nil
}

// FinishPlanSave records the save outcome. Failure does not revert
// in-memory edits; the user may retry.
func (s State) FinishPlanSave(saveErr *i18n.Text) State {
	s.PlanSaving = false
	s.PlanSaveError = saveErr
	return s
}

// Reset clears all session state and returns to Welcome.
func (s State) Reset() State {
	return NewState()
}
