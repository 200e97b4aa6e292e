package guide

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

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

type mockPlanRepo struct {
	loaded plan.Data
	err    error

	upsertKey   string
	upsertData  *plan.Data
	upsertName  string
	upsertEmail string
}

func (m *mockPlanRepo) LoadOrDefault(_ context.Context, key, fallbackPrimary string) (plan.Data, error) {
	if m.err != nil {
		return plan.Data{}, m.err
	}
	return m.loaded, nil
}

func (m *mockPlanRepo) Upsert(_ context.Context, key string, data plan.Data, ownerName, ownerEmail string) error {
	if m.err != nil {
		return m.err
	}
	m.upsertKey = key
	m.upsertData = &data
	m.upsertName = ownerName
	m.upsertEmail = ownerEmail
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestGuide(repo *mockPlanRepo) (*GuideScreen, *quiz.Session) {
	sess := quiz.NewSession(i18n.EN)
	p := plan.Default("Leadership, Teaching")
	sess.State.Name = "Ana"
	sess.State.Email = "ana@example.com"
	sess.State.Plan = &p
	sess.State.Step = quiz.StepDevelopmentGuide
	g := New(sess, repo,
		func() screen.Screen { return &stubScreen{name: "results"} },
		func() screen.Screen { return &stubScreen{name: "identify"} },
		func() screen.Screen { return &stubScreen{name: "welcome"} })
	return g, sess
}

func TestEntryLayout(t *testing.T) {
	entries := buildEntries()
	if len(entries) != 22 {
		t.Fatalf("expected 22 rows, got %d", len(entries))
	}
	if entries[0].kind != entryPrimary {
		t.Error("first row must be the read-only primary gifts")
	}
	if entries[1].field != plan.FieldSecondaryGifts {
		t.Error("second row must be the secondary gifts field")
	}
	for i := 2; i <= 4; i++ {
		if entries[i].kind != entryCategory {
			t.Errorf("row %d should be a category flag", i)
		}
	}
	for _, e := range entries {
		if e.label.EN == "" || e.label.ES == "" {
			t.Errorf("row kind %d missing a label translation", e.kind)
		}
	}
}

func TestInitLoadsPendingPlan(t *testing.T) {
	repo := &mockPlanRepo{loaded: plan.Default("Leadership")}
	g, sess := newTestGuide(repo)
	sess.State.Plan = nil
	sess.State.PlanLoading = true

	cmd := g.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	msg, ok := cmd().(planLoadedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("expected a successful load, got %#v", msg)
	}
	g.Update(msg)
	if sess.State.PlanLoading || sess.State.Plan == nil {
		t.Error("expected the plan adopted into the session")
	}
	if sess.State.Plan.PrimaryGifts != "Leadership" {
		t.Errorf("unexpected primary gifts %q", sess.State.Plan.PrimaryGifts)
	}
}

func TestCategoryToggle(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})
	g.cursor = 2
	cat := g.entries[2].cat

	g.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !sess.State.Plan.Category(cat) {
		t.Error("space should set the flag")
	}
	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if sess.State.Plan.Category(cat) {
		t.Error("enter should clear the flag again")
	}
}

func TestEditCommitOnEsc(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})
	g.cursor = 1 // secondary gifts

	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !g.editing {
		t.Fatal("enter on a text field should start editing")
	}
	for _, r := range "mercy" {
		g.Update(keyPress(r))
	}
	handled, _ := g.HandleEsc()
	if !handled {
		t.Fatal("esc while editing must be consumed")
	}
	if g.editing {
		t.Error("esc should leave edit mode")
	}
	if got := sess.State.Plan.Get(plan.FieldSecondaryGifts); got != "mercy" {
		t.Errorf("expected the edit committed, got %q", got)
	}

	handled, _ = g.HandleEsc()
	if handled {
		t.Error("esc outside editing must fall through to navigation")
	}
}

func TestSaveFlow(t *testing.T) {
	repo := &mockPlanRepo{}
	g, sess := newTestGuide(repo)
	sess.State = sess.State.UpdatePlanField(plan.FieldBaseOfOperations, "home group")

	cmd := pressCtrlS(g)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if !sess.State.PlanSaving {
		t.Error("save must be marked in flight")
	}

	msg, ok := cmd().(planSavedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("expected a successful save, got %#v", msg)
	}
	if repo.upsertKey != "ana@example.com" {
		t.Errorf("unexpected document key %q", repo.upsertKey)
	}
	if repo.upsertName != "Ana" || repo.upsertEmail != "ana@example.com" {
		t.Errorf("owner not forwarded: %q %q", repo.upsertName, repo.upsertEmail)
	}
	if repo.upsertData.Get(plan.FieldBaseOfOperations) != "home group" {
		t.Error("edited field missing from the saved document")
	}

	g.Update(msg)
	if sess.State.PlanSaving {
		t.Error("save completion must clear the in-flight flag")
	}
	if !g.saved {
		t.Error("expected the saved confirmation")
	}
	if !strings.Contains(g.View(100, 40), "Plan saved.") {
		t.Error("expected the saved banner in the view")
	}
}

func TestSaveWithoutPlanWarns(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})
	sess.State.Plan = nil
	sess.State.PlanLoadError = &i18n.MsgErrorLoadingData

	cmd := pressCtrlS(g)
	if cmd != nil {
		t.Fatal("save must not reach the store without a plan")
	}
	if g.warning == nil {
		t.Fatal("expected a warning")
	}
	if g.warning.EN != i18n.MsgNoPlanOrEmailMissing.EN {
		t.Errorf("unexpected warning %q", g.warning.EN)
	}
}

func TestSaveFailureKeepsEdits(t *testing.T) {
	repo := &mockPlanRepo{err: errors.New("disk full")}
	g, sess := newTestGuide(repo)
	sess.State = sess.State.UpdatePlanField(plan.FieldTimeline1Year, "monthly review")

	cmd := pressCtrlS(g)
	msg := cmd().(planSavedMsg)
	if msg.Err == nil {
		t.Fatal("expected the save error surfaced")
	}
	g.Update(msg)
	if sess.State.PlanSaveError == nil {
		t.Error("expected PlanSaveError set")
	}
	if sess.State.Plan.Get(plan.FieldTimeline1Year) != "monthly review" {
		t.Error("a failed save must not revert in-memory edits")
	}
}

func TestStaleSaveResponseDropped(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})
	cmd := pressCtrlS(g)
	msg := cmd().(planSavedMsg)

	sess.Reset()
	g.Update(msg)
	if g.saved {
		t.Error("a response from before the reset must be ignored")
	}
	if sess.State.Step != quiz.StepWelcome {
		t.Errorf("reset state disturbed, step %v", sess.State.Step)
	}
}

func TestStartOverFromGuide(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})

	_, cmd := g.Update(keyPress('r'))
	reset, ok := cmd().(router.ResetScreenMsg)
	if !ok || reset.Root.Title() != "welcome" {
		t.Fatal("expected router reset to the welcome root")
	}
	if sess.State.Step != quiz.StepWelcome || sess.State.Plan != nil {
		t.Error("expected session cleared")
	}
}

func TestEscDuringLoadReleasesGuard(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{loaded: plan.Default("Leadership")})
	sess.State.Plan = nil
	sess.State.PlanLoading = true

	cmd := g.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}

	handled, _ := g.HandleEsc()
	if handled {
		t.Fatal("esc outside editing must still pop the screen")
	}
	if sess.State.PlanLoading {
		t.Error("abandoning the guide must clear the in-flight flag")
	}

	msg := cmd().(planLoadedMsg)
	if !sess.Stale(msg.Gen) {
		t.Error("abandoned load must be stale")
	}
}

func TestViewResultsRedirect(t *testing.T) {
	g, sess := newTestGuide(&mockPlanRepo{})
	sess.State.Result = nil

	_, cmd := g.Update(keyPress('v'))
	push, ok := cmd().(router.PushScreenMsg)
	if !ok || push.Screen.Title() != "identify" {
		t.Fatal("without a result, v must redirect to identification")
	}
	if sess.State.Step != quiz.StepIdentifyForQuiz {
		t.Errorf("expected StepIdentifyForQuiz, got %v", sess.State.Step)
	}
}

func pressCtrlS(g *GuideScreen) tea.Cmd {
	_, cmd := g.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	return cmd
}
