package questionnaire

import (
	"context"
	"errors"
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

type mockResultRepo struct {
	appended *quiz.UserResult
	err      error
}

func (m *mockResultRepo) Append(_ context.Context, r *quiz.UserResult) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.appended = r
	return 7, nil
}

func (m *mockResultRepo) MostRecentByEmail(_ context.Context, _ string) (*quiz.UserResult, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestForm(repo *mockResultRepo) (*QuestionnaireScreen, *quiz.Session) {
	sess := quiz.NewSession(i18n.EN)
	st, _ := sess.State.StartQuiz("Ana", "ana@example.com")
	sess.State = st
	q := New(sess, repo, func() screen.Screen { return &stubScreen{name: "results"} })
	return q, sess
}

// answerPage rates every question on the current page.
func answerPage(q *QuestionnaireScreen, rating rune) {
	for range q.sess.State.PageQuestions() {
		q.Update(keyPress(rating))
		q.Update(keyPress('j'))
	}
}

func TestRatingKeyRecordsAnswer(t *testing.T) {
	q, sess := newTestForm(&mockResultRepo{})

	q.Update(keyPress('4'))
	first := sess.State.PageQuestions()[0]
	if got := sess.State.Answers[first.ID]; got != 4 {
		t.Errorf("answer = %d, want 4", got)
	}
}

func TestNextPageGuard(t *testing.T) {
	q, sess := newTestForm(&mockResultRepo{})

	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if sess.State.Page != 0 {
		t.Error("unanswered page must not advance")
	}
	if q.warning == nil {
		t.Error("expected the answer-all warning")
	}

	answerPage(q, '3')
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if sess.State.Page != 1 {
		t.Errorf("page = %d, want 1", sess.State.Page)
	}
	if q.warning != nil {
		t.Error("warning should clear on success")
	}
}

func TestSubmitFlow(t *testing.T) {
	repo := &mockResultRepo{}
	q, sess := newTestForm(repo)

	for page := 0; page < catalog.TotalPages(); page++ {
		answerPage(q, '5')
		_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if page < catalog.TotalPages()-1 {
			continue
		}

		// Last page: the submit flow starts.
		if sess.State.Step != quiz.StepCalculating {
			t.Fatalf("expected StepCalculating, got %v", sess.State.Step)
		}
		if cmd == nil {
			t.Fatal("expected the calculating tick")
		}
	}

	_, cmd := q.Update(calcDoneMsg{Gen: sess.Generation()})
	if sess.State.Step != quiz.StepSaving {
		t.Fatalf("expected StepSaving, got %v", sess.State.Step)
	}
	if cmd == nil {
		t.Fatal("expected the save command")
	}

	saved, ok := cmd().(resultSavedMsg)
	if !ok {
		t.Fatal("expected resultSavedMsg")
	}
	if saved.Err != nil {
		t.Fatalf("unexpected save error: %v", saved.Err)
	}
	if repo.appended == nil || repo.appended.Email != "ana@example.com" {
		t.Fatal("expected the result appended to the store")
	}

	_, cmd = q.Update(saved)
	if sess.State.Step != quiz.StepResults {
		t.Fatalf("expected StepResults, got %v", sess.State.Step)
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "results" {
		t.Fatal("expected push of the results screen")
	}
	if sess.State.Result.ID != 7 {
		t.Errorf("store id = %d, want 7", sess.State.Result.ID)
	}
}

func TestSaveFailureStillShowsResults(t *testing.T) {
	repo := &mockResultRepo{err: errors.New("disk full")}
	q, sess := newTestForm(repo)

	for page := 0; page < catalog.TotalPages(); page++ {
		answerPage(q, '2')
		q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	_, cmd := q.Update(calcDoneMsg{Gen: sess.Generation()})
	saved := cmd().(resultSavedMsg)
	if saved.Err == nil {
		t.Fatal("expected the save error mapped to a message")
	}

	_, cmd = q.Update(saved)
	if sess.State.Step != quiz.StepResults {
		t.Fatal("a failed save must still reach the results")
	}
	if cmd == nil {
		t.Fatal("expected navigation to results")
	}
	if sess.State.Result.SaveError == nil {
		t.Error("expected the save error annotated on the result")
	}
}

func TestStaleSaveResponseDropped(t *testing.T) {
	q, sess := newTestForm(&mockResultRepo{})

	for page := 0; page < catalog.TotalPages(); page++ {
		answerPage(q, '5')
		q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	gen := sess.Generation()
	q.Update(calcDoneMsg{Gen: gen})

	sess.Reset()

	_, cmd := q.Update(resultSavedMsg{Gen: gen, ID: 3})
	if cmd != nil {
		t.Fatal("stale save response must not navigate")
	}
	if sess.State.Step != quiz.StepWelcome {
		t.Error("stale save response must not touch fresh state")
	}
}

func TestEscRefusedWhileSubmitting(t *testing.T) {
	q, sess := newTestForm(&mockResultRepo{})

	if handled, _ := q.HandleEsc(); handled {
		t.Fatal("esc on the form must fall through to the pop")
	}

	for page := 0; page < catalog.TotalPages(); page++ {
		answerPage(q, '5')
		q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	if sess.State.Step != quiz.StepCalculating {
		t.Fatalf("expected StepCalculating, got %v", sess.State.Step)
	}
	if handled, _ := q.HandleEsc(); !handled {
		t.Error("esc must be consumed while calculating")
	}

	q.Update(calcDoneMsg{Gen: sess.Generation()})
	if handled, _ := q.HandleEsc(); !handled {
		t.Error("esc must be consumed while saving")
	}
}

func TestPrevPage(t *testing.T) {
	q, sess := newTestForm(&mockResultRepo{})

	answerPage(q, '3')
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	q.Update(keyPress('b'))
	if sess.State.Page != 0 {
		t.Errorf("page = %d, want 0", sess.State.Page)
	}
}
