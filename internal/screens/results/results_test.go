package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/acampos/giftwise/internal/catalog"
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func sessionWithResult() *quiz.Session {
	sess := quiz.NewSession(i18n.EN)
	scores := []quiz.GiftScore{
		{Gift: catalog.Gifts[0], Score: 15},
		{Gift: catalog.Gifts[1], Score: 12},
		{Gift: catalog.Gifts[2], Score: 9},
	}
	sess.State.Name = "Ana"
	sess.State.Email = "ana@example.com"
	sess.State.Result = &quiz.UserResult{
		Name:      "Ana",
		Email:     "ana@example.com",
		TopGifts:  scores,
		AllScores: scores,
	}
	sess.State.Step = quiz.StepResults
	return sess
}

func newTestResults(sess *quiz.Session) *ResultsScreen {
	return New(sess,
		func() screen.Screen { return &stubScreen{name: "guide"} },
		func() screen.Screen { return &stubScreen{name: "identify"} },
		func() screen.Screen { return &stubScreen{name: "welcome"} })
}

func TestOpenGuide(t *testing.T) {
	sess := sessionWithResult()
	r := newTestResults(sess)

	_, cmd := r.Update(keyPress('d'))
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "guide" {
		t.Fatal("expected push of the guide screen")
	}
	if sess.State.Step != quiz.StepDevelopmentGuide {
		t.Errorf("expected StepDevelopmentGuide, got %v", sess.State.Step)
	}
	if !sess.State.PlanLoading {
		t.Error("expected the plan load pending")
	}
}

func TestOpenGuideWithoutIdentityRedirects(t *testing.T) {
	sess := sessionWithResult()
	sess.State.Email = ""
	r := newTestResults(sess)

	_, cmd := r.Update(keyPress('d'))
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "identify" {
		t.Fatal("expected redirect to the identify screen")
	}
	if sess.State.Step != quiz.StepIdentifyForDevelopment {
		t.Errorf("expected StepIdentifyForDevelopment, got %v", sess.State.Step)
	}
	if sess.State.Notice == nil {
		t.Error("expected the enter-email notice")
	}
}

func TestStartOver(t *testing.T) {
	sess := sessionWithResult()
	r := newTestResults(sess)
	gen := sess.Generation()

	_, cmd := r.Update(keyPress('r'))
	reset, ok := cmd().(router.ResetScreenMsg)
	if !ok || reset.Root.Title() != "welcome" {
		t.Fatal("expected router reset to the welcome root")
	}
	if sess.State.Step != quiz.StepWelcome || sess.State.Result != nil {
		t.Error("expected session cleared")
	}
	if sess.Generation() == gen {
		t.Error("reset must invalidate in-flight async work")
	}
}

func TestViewShowsGiftsAndSaveError(t *testing.T) {
	sess := sessionWithResult()
	sess.State.Result.SaveError = &i18n.MsgSavingErrorDB
	r := newTestResults(sess)

	view := r.View(100, 40)
	if !strings.Contains(view, "Leadership") {
		t.Error("expected the top gift in the view")
	}
	if !strings.Contains(view, "problem saving") {
		t.Error("expected the save error banner")
	}
}
