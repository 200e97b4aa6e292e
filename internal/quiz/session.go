package quiz

import "github.com/acampos/giftwise/internal/i18n"

// Session owns the state value for the running application and the
// active display language. Screens share one *Session and replace its
// State through transitions; all access happens on the Bubble Tea update
// loop, so no locking is needed.
//
// The generation counter closes the stale-response hole of reset-based
// clearing: every async command captures Generation() at launch, and its
// completion message is dropped when the counter has moved on — a late
// result from a previous session can never overwrite fresh state.
type Session struct {
	State State
	Lang  i18n.Lang

	gen int
}

// NewSession creates a session at the Welcome step.
func NewSession(lang i18n.Lang) *Session {
	return &Session{State: NewState(), Lang: lang}
}

// Generation returns the current session generation.
func (s *Session) Generation() int {
	return s.gen
}

// Stale reports whether an async completion tagged with gen belongs to
// an earlier, no-longer-current session.
func (s *Session) Stale(gen int) bool {
	return gen != s.gen
}

// Reset clears all session state, returns to Welcome, and invalidates
// any in-flight async operation.
func (s *Session) Reset() {
	s.State = s.State.Reset()
	s.gen++
}

// AbandonPlanLoad cancels an in-flight plan load: the single-flight
// guard is released so a later attempt can start, and the generation
// moves so the abandoned load's completion is dropped on arrival.
func (s *Session) AbandonPlanLoad() {
	if !s.State.PlanLoading {
		return
	}
	s.State = s.State.CancelPlanLoad()
	s.gen++
}

// ToggleLang switches the active display language.
func (s *Session) ToggleLang() {
	s.Lang = i18n.Toggle(s.Lang)
}

// T resolves a bilingual text in the active language.
func (s *Session) T(t i18n.Text) string {
	return t.In(s.Lang)
}
