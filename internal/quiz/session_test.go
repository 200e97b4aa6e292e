package quiz

import (
	"testing"

	"github.com/acampos/giftwise/internal/i18n"
)

func TestSessionStalenessGuard(t *testing.T) {
	s := NewSession(i18n.EN)

	gen := s.Generation()
	if s.Stale(gen) {
		t.Error("current generation must not be stale")
	}

	// A reset while an operation is in flight invalidates its completion.
	s.Reset()
	if !s.Stale(gen) {
		t.Error("pre-reset generation must be stale after reset")
	}
	if s.Stale(s.Generation()) {
		t.Error("new generation must be current")
	}
}

func TestSessionResetClearsState(t *testing.T) {
	s := NewSession(i18n.EN)
	s.State = s.State.BeginQuiz()
	s.State, _ = s.State.StartQuiz("Ana", "ana@example.com")

	s.Reset()

	if s.State.Step != StepWelcome {
		t.Errorf("step = %v, want Welcome", s.State.Step)
	}
	if s.State.Name != "" {
		t.Error("name should clear")
	}
}

func TestSessionLanguageToggle(t *testing.T) {
	s := NewSession(i18n.EN)
	s.ToggleLang()
	if s.Lang != i18n.ES {
		t.Errorf("lang = %v, want ES", s.Lang)
	}
	if got := s.T(i18n.Text{EN: "hi", ES: "hola"}); got != "hola" {
		t.Errorf("T = %q, want hola", got)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "ana.perez@example.com", "x+y@sub.domain.org"}
	invalid := []string{"", "   ", "a", "a@b", "@b.com", "a@.com", "a b@c.com"}

	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}
