package identify

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

type mockResultRepo struct {
	result *quiz.UserResult
	err    error
}

func (m *mockResultRepo) Append(_ context.Context, _ *quiz.UserResult) (int, error) {
	return 1, nil
}

func (m *mockResultRepo) MostRecentByEmail(_ context.Context, _ string) (*quiz.UserResult, error) {
	return m.result, m.err
}

type mockPlanRepo struct {
	data plan.Data
	err  error
}

func (m *mockPlanRepo) LoadOrDefault(_ context.Context, _ string, fallback string) (plan.Data, error) {
	if m.err != nil {
		return plan.Data{}, m.err
	}
	if m.data.PrimaryGifts == "" {
		return plan.Default(fallback), nil
	}
	return m.data, nil
}

func (m *mockPlanRepo) Upsert(_ context.Context, _ string, _ plan.Data, _, _ string) error {
	return nil
}

func typeString(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func sampleResult() *quiz.UserResult {
	return &quiz.UserResult{
		Name:     "Ana",
		Email:    "ana@example.com",
		TopGifts: []quiz.GiftScore{{Gift: catalog.Gifts[0], Score: 12}},
	}
}

func TestQuizModeRejectsInvalidInput(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	s := New(ModeQuiz, sess, &mockResultRepo{}, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "form"} })
	s.Init()

	// Empty name, jump straight to submit from the email field.
	s.setFocus(1)
	typeString(s, "not-an-email")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("invalid input should not navigate")
	}
	if s.errText == nil {
		t.Fatal("expected a validation message")
	}
	if sess.State.Step != quiz.StepWelcome {
		t.Errorf("state should be unchanged, got step %v", sess.State.Step)
	}
}

func TestQuizModeSubmitEntersForm(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	s := New(ModeQuiz, sess, &mockResultRepo{}, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "form"} })
	s.Init()

	typeString(s, "Ana")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // advance to email
	typeString(s, "ana@example.com")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "form" {
		t.Fatal("expected push of the questionnaire screen")
	}
	if sess.State.Step != quiz.StepForm {
		t.Errorf("expected StepForm, got %v", sess.State.Step)
	}
	if sess.State.Name != "Ana" || sess.State.Email != "ana@example.com" {
		t.Errorf("identity not captured: %q %q", sess.State.Name, sess.State.Email)
	}
}

func TestDevelopmentModeLoadsPlan(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	repo := &mockResultRepo{result: sampleResult()}
	s := New(ModeDevelopment, sess, repo, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "guide"} })
	s.Init()

	typeString(s, "ana@example.com")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the load command")
	}
	if !sess.State.PlanLoading {
		t.Fatal("expected PlanLoading set while the load is in flight")
	}

	msg := cmd()
	loaded, ok := msg.(planLoadedMsg)
	if !ok {
		t.Fatalf("expected planLoadedMsg, got %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("unexpected load error: %v", loaded.Err)
	}

	_, cmd = s.Update(loaded)
	if cmd == nil {
		t.Fatal("expected navigation after successful load")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "guide" {
		t.Fatal("expected push of the guide screen")
	}
	if sess.State.Step != quiz.StepDevelopmentGuide {
		t.Errorf("expected StepDevelopmentGuide, got %v", sess.State.Step)
	}
	if sess.State.Plan == nil {
		t.Error("expected plan adopted into session")
	}
	if sess.State.Name != "Ana" {
		t.Errorf("expected name adopted from stored result, got %q", sess.State.Name)
	}
}

func TestDevelopmentModeNoResultForEmail(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	s := New(ModeDevelopment, sess, &mockResultRepo{}, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "guide"} })
	s.Init()

	typeString(s, "ghost@example.com")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the load command")
	}

	loaded := cmd().(planLoadedMsg)
	if loaded.Err == nil {
		t.Fatal("expected the no-results message")
	}

	_, cmd = s.Update(loaded)
	if cmd != nil {
		t.Fatal("failed load should not navigate")
	}
	if sess.State.PlanLoadError == nil {
		t.Error("expected PlanLoadError surfaced")
	}
	if sess.State.Step == quiz.StepDevelopmentGuide {
		t.Error("failed load must not enter the guide")
	}
}

func TestBackOutDuringLoadAllowsRetry(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	repo := &mockResultRepo{result: sampleResult()}
	s := New(ModeDevelopment, sess, repo, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "guide"} })
	s.Init()

	typeString(s, "ana@example.com")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	loaded := cmd().(planLoadedMsg)

	// The user backs out while the load is in flight; the pop must
	// release the single-flight guard.
	handled, _ := s.HandleEsc()
	if handled {
		t.Fatal("esc must still pop the screen")
	}
	if sess.State.PlanLoading {
		t.Fatal("abandoning the screen must clear the in-flight flag")
	}

	// The abandoned load's completion lands on whatever screen is
	// active; its generation no longer matches.
	if !sess.Stale(loaded.Gen) {
		t.Fatal("abandoned load must be stale")
	}

	// A fresh visit can start a new load.
	s2 := New(ModeDevelopment, sess, repo, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "guide"} })
	s2.Init()
	_, cmd = s2.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("retry after backing out must issue a new load")
	}
	if !sess.State.PlanLoading {
		t.Error("expected the new load in flight")
	}
}

func TestStaleLoadResponseDropped(t *testing.T) {
	sess := quiz.NewSession(i18n.EN)
	s := New(ModeDevelopment, sess, &mockResultRepo{result: sampleResult()}, &mockPlanRepo{},
		func() screen.Screen { return &stubScreen{name: "guide"} })
	s.Init()

	typeString(s, "ana@example.com")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	loaded := cmd().(planLoadedMsg)

	// The session resets while the response is in flight.
	sess.Reset()

	_, cmd = s.Update(loaded)
	if cmd != nil {
		t.Fatal("stale response must not navigate")
	}
	if sess.State.Plan != nil || sess.State.Step != quiz.StepWelcome {
		t.Error("stale response must not touch fresh state")
	}
}
