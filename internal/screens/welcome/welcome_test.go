package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func newTestWelcome() (*WelcomeScreen, *quiz.Session) {
	sess := quiz.NewSession(i18n.EN)
	w := New(sess,
		func() screen.Screen { return &stubScreen{name: "quiz"} },
		func() screen.Screen { return &stubScreen{name: "dev"} })
	return w, sess
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSelectQuizFlow(t *testing.T) {
	w, sess := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter on the first item")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen.Title() != "quiz" {
		t.Errorf("expected quiz flow screen, got %q", push.Screen.Title())
	}
	if sess.State.Step != quiz.StepIdentifyForQuiz {
		t.Errorf("expected step IdentifyForQuiz, got %v", sess.State.Step)
	}
}

func TestSelectDevelopmentFlow(t *testing.T) {
	w, sess := newTestWelcome()

	w.Update(keyPress('j'))
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "dev" {
		t.Errorf("expected dev flow screen, got %q", push.Screen.Title())
	}
	if sess.State.Step != quiz.StepIdentifyForDevelopment {
		t.Errorf("expected step IdentifyForDevelopment, got %v", sess.State.Step)
	}
}

func TestLanguageToggleRelabels(t *testing.T) {
	w, sess := newTestWelcome()

	if !strings.Contains(w.View(100, 30), "Take the Questionnaire") {
		t.Fatal("expected English labels at start")
	}

	sess.ToggleLang()
	w.Update(screen.LangChangedMsg{})

	if !strings.Contains(w.View(100, 30), "Realizar el Cuestionario") {
		t.Error("expected Spanish labels after toggle")
	}
}

func TestBannerCompactFallback(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "G I F T W I S E") {
		t.Error("narrow terminals should get the compact banner")
	}
	if strings.Contains(RenderBanner(100), "G I F T W I S E") {
		t.Error("wide terminals should get the full banner")
	}
}
