package quiz

import (
	"testing"
	"time"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
)

func answerPage(s State, page int) State {
	for _, q := range catalog.Page(page) {
		s = s.SetAnswer(q.ID, 3)
	}
	return s
}

func answerAll(s State) State {
	for _, q := range catalog.Questions {
		s = s.SetAnswer(q.ID, 3)
	}
	return s
}

func identified(t *testing.T) State {
	t.Helper()
	s, warn := NewState().BeginQuiz().StartQuiz("Ana", "ana@example.com")
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	return s
}

func TestStartQuizValidation(t *testing.T) {
	tests := []struct {
		name, userName, email string
		wantWarn              *i18n.Text
	}{
		{"empty name", "", "a@b.com", &i18n.MsgNameRequired},
		{"blank name", "   ", "a@b.com", &i18n.MsgNameRequired},
		{"no at sign", "Ana", "nope", &i18n.MsgInvalidEmail},
		{"no domain dot", "Ana", "a@b", &i18n.MsgInvalidEmail},
		{"valid", "Ana", "a@b.com", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, warn := NewState().BeginQuiz().StartQuiz(tt.userName, tt.email)
			if (warn == nil) != (tt.wantWarn == nil) {
				t.Fatalf("warn = %v, want %v", warn, tt.wantWarn)
			}
			if warn != nil && s.Step != StepIdentifyForQuiz {
				t.Error("refused identification must not change step")
			}
			if warn == nil && s.Step != StepForm {
				t.Errorf("step = %v, want Form", s.Step)
			}
		})
	}
}

func TestStartQuizResetsPriorSession(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	s.Page = 2
	s.Result = &UserResult{Name: "old"}

	s, warn := s.StartQuiz("Ben", "ben@example.com")
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	if len(s.Answers) != 0 {
		t.Error("answers should be cleared")
	}
	if s.Page != 0 {
		t.Error("pagination should reset to page 0")
	}
	if s.Result != nil {
		t.Error("result should be cleared")
	}
}

func TestSetAnswerRejectsOutOfRange(t *testing.T) {
	s := identified(t)
	s = s.SetAnswer(1, 0)
	s = s.SetAnswer(1, 6)
	s = s.SetAnswer(0, 3)
	s = s.SetAnswer(len(catalog.Questions)+1, 3)
	if len(s.Answers) != 0 {
		t.Errorf("invalid answers recorded: %v", s.Answers)
	}
}

func TestSetAnswerDoesNotAliasPriorState(t *testing.T) {
	s1 := identified(t)
	s2 := s1.SetAnswer(1, 5)
	if len(s1.Answers) != 0 {
		t.Error("transition mutated the previous state's answer map")
	}
	if s2.Answers[1] != 5 {
		t.Error("answer not recorded in new state")
	}
}

func TestNextPageGuard(t *testing.T) {
	s := identified(t)

	// Partially answered page: refuse with a warning, index unchanged.
	s = s.SetAnswer(1, 4)
	next, warn := s.NextPage()
	if warn == nil {
		t.Fatal("expected a warning for a partially answered page")
	}
	if next.Page != 0 {
		t.Errorf("page = %d, want 0 (unchanged)", next.Page)
	}

	// Fully answered page: exactly one increment.
	s = answerPage(s, 0)
	next, warn = s.NextPage()
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	if next.Page != 1 {
		t.Errorf("page = %d, want 1", next.Page)
	}
}

func TestPrevPageUnguarded(t *testing.T) {
	s := identified(t)
	s.Page = 2
	s = s.PrevPage()
	if s.Page != 1 {
		t.Errorf("page = %d, want 1", s.Page)
	}
	s.Page = 0
	if s.PrevPage().Page != 0 {
		t.Error("prev at first page should stay at 0")
	}
}

func TestCalculateGlobalGuard(t *testing.T) {
	s := identified(t)
	// Answer every page except the first, then sit on the last page.
	for p := 1; p < catalog.TotalPages(); p++ {
		s = answerPage(s, p)
	}
	s.Page = catalog.TotalPages() - 1

	// Current page fully answered; an earlier page is not.
	_, warn := s.Calculate("sub-1", time.Now())
	if warn == nil {
		t.Fatal("expected refusal when any page is unanswered")
	}
}

func TestCalculateComputesRankedResult(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	// Boost one gift so ranking is observable.
	for _, qid := range catalog.Gifts[4].Questions {
		s = s.SetAnswer(qid, 5)
	}

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s, warn := s.Calculate("sub-1", now)
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	if s.Step != StepCalculating {
		t.Errorf("step = %v, want Calculating", s.Step)
	}
	r := s.Result
	if r == nil {
		t.Fatal("expected a result")
	}
	if r.TopGifts[0].Gift.ID != catalog.Gifts[4].ID {
		t.Errorf("top gift = %s, want %s", r.TopGifts[0].Gift.ID, catalog.Gifts[4].ID)
	}
	if len(r.TopGifts) != catalog.TopGiftCount {
		t.Errorf("top gifts = %d, want %d", len(r.TopGifts), catalog.TopGiftCount)
	}
	if len(r.AllScores) != len(catalog.Gifts) {
		t.Errorf("all scores = %d, want %d", len(r.AllScores), len(catalog.Gifts))
	}
	if !r.CreatedAt.Equal(now) {
		t.Error("result should carry the injected clock value")
	}
	if r.SubmissionID != "sub-1" {
		t.Error("result should carry the submission id")
	}
	// Only top gifts are ranked; the full list keeps catalog order.
	for i, gs := range r.AllScores {
		if gs.Gift.ID != catalog.Gifts[i].ID {
			t.Fatalf("all scores at %d = %s, want catalog order (%s)",
				i, gs.Gift.ID, catalog.Gifts[i].ID)
		}
	}
}

func TestFinishSaveFailureStillShowsResults(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	s, _ = s.Calculate("sub-1", time.Now())
	s = s.BeginSaving()

	s = s.FinishSave(0, &i18n.MsgSavingErrorDB)

	if s.Step != StepResults {
		t.Errorf("step = %v, want Results even on save failure", s.Step)
	}
	if s.Result == nil || s.Result.SaveError == nil {
		t.Fatal("save failure should annotate the result")
	}
	if len(s.Result.TopGifts) == 0 {
		t.Error("scores must stay intact on save failure")
	}
}

func TestFinishSaveSuccessRecordsStoreID(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	s, _ = s.Calculate("sub-1", time.Now())
	s = s.BeginSaving().FinishSave(41, nil)

	if s.Result.ID != 41 {
		t.Errorf("result id = %d, want 41", s.Result.ID)
	}
	if s.SaveError != nil {
		t.Error("no save error expected")
	}
}

func TestGoToGuideGuard(t *testing.T) {
	s := NewState()
	s.Step = StepResults

	s = s.GoToGuide()
	if s.Step != StepIdentifyForDevelopment {
		t.Errorf("step = %v, want redirect to IdentifyForDevelopment", s.Step)
	}
	if s.Notice == nil {
		t.Error("redirect should carry an informational message")
	}
}

func TestGoToGuideStartsPlanLoad(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	s, _ = s.Calculate("sub-1", time.Now())
	s = s.BeginSaving().FinishSave(1, nil)

	s = s.GoToGuide()
	if s.Step != StepDevelopmentGuide {
		t.Errorf("step = %v, want DevelopmentGuide", s.Step)
	}
	if !s.PlanLoading {
		t.Error("plan load should be marked in flight")
	}
}

func TestGoToResultsGuard(t *testing.T) {
	s := NewState()
	s.Step = StepDevelopmentGuide

	s = s.GoToResults()
	if s.Step != StepIdentifyForQuiz {
		t.Errorf("step = %v, want redirect to IdentifyForQuiz", s.Step)
	}
	if s.Notice == nil {
		t.Error("redirect should carry an informational message")
	}
}

func TestBeginPlanLoadByEmail(t *testing.T) {
	s := NewState().BeginDevelopment()

	_, warn := s.BeginPlanLoadByEmail("bad")
	if warn == nil {
		t.Fatal("expected invalid email warning")
	}

	s, warn = s.BeginPlanLoadByEmail("ana@example.com")
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	if !s.PlanLoading {
		t.Error("load should be marked in flight")
	}
	if s.Email != "ana@example.com" {
		t.Errorf("email = %q", s.Email)
	}
}

func TestFinishPlanLoadNotFound(t *testing.T) {
	s := NewState().BeginDevelopment()
	s, _ = s.BeginPlanLoadByEmail("ana@example.com")

	s = s.FinishPlanLoad(nil, nil, &i18n.MsgNoResultsForEmail)

	if s.Step != StepIdentifyForDevelopment {
		t.Errorf("step = %v, want to stay at IdentifyForDevelopment", s.Step)
	}
	if s.PlanLoading {
		t.Error("load flag should clear")
	}
	if s.PlanLoadError == nil {
		t.Error("load error should surface")
	}
	if s.Plan != nil {
		t.Error("no plan should be set")
	}
}

func TestFinishPlanLoadSuccessEntersGuide(t *testing.T) {
	s := NewState().BeginDevelopment()
	s, _ = s.BeginPlanLoadByEmail("ana@example.com")

	res := &UserResult{Name: "Ana", Email: "ana@example.com"}
	p := plan.Default("Teaching, Mercy, Faith")
	s = s.FinishPlanLoad(res, &p, nil)

	if s.Step != StepDevelopmentGuide {
		t.Errorf("step = %v, want DevelopmentGuide", s.Step)
	}
	if s.Result != res {
		t.Error("loaded result should become the active result")
	}
	if s.Name != "Ana" {
		t.Error("name should come from the loaded result")
	}
	if s.Plan == nil || s.Plan.PrimaryGifts != "Teaching, Mercy, Faith" {
		t.Error("plan should be set")
	}
}

func TestPlanFieldAndCategoryUpdates(t *testing.T) {
	s := NewState()
	p := plan.Default("top")
	p.Categories.Numericos = true
	s.Plan = &p

	s = s.UpdatePlanField(plan.FieldSecondaryGifts, "Hospitality")
	if s.Plan.SecondaryGifts != "Hospitality" {
		t.Error("field update should replace the value")
	}
	if p.SecondaryGifts != "" {
		t.Error("update must not mutate the previous plan value")
	}

	s = s.TogglePlanCategory(plan.CategoryMadurez)
	if !s.Plan.Categories.Madurez {
		t.Error("toggled flag should be set")
	}
	if !s.Plan.Categories.Numericos || s.Plan.Categories.Organicos {
		t.Error("other flags must be unchanged")
	}
}

func TestBeginPlanSaveGuards(t *testing.T) {
	s := NewState()
	_, warn := s.BeginPlanSave()
	if warn == nil {
		t.Fatal("save without plan or email must be rejected before any store call")
	}

	p := plan.Default("x")
	s.Plan = &p
	s.Email = "ana@example.com"
	s, warn = s.BeginPlanSave()
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	if !s.PlanSaving {
		t.Error("save should be marked in flight")
	}
}

func TestFinishPlanSaveFailureKeepsEdits(t *testing.T) {
	s := NewState()
	p := plan.Default("x").WithField(plan.FieldBaseOfOperations, "home")
	s.Plan = &p
	s.Email = "ana@example.com"
	s, _ = s.BeginPlanSave()

	s = s.FinishPlanSave(&i18n.MsgErrorSavingPlan)

	if s.PlanSaving {
		t.Error("save flag should clear")
	}
	if s.PlanSaveError == nil {
		t.Error("save error should surface")
	}
	if s.Plan.BaseOfOperations != "home" {
		t.Error("in-memory edits must not be reverted")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := identified(t)
	s = answerAll(s)
	s, _ = s.Calculate("sub-1", time.Now())
	s = s.BeginSaving().FinishSave(0, &i18n.MsgSavingErrorDB)
	p := plan.Default("x")
	s.Plan = &p
	s.PlanSaveError = &i18n.MsgErrorSavingPlan

	s = s.Reset()

	if s.Step != StepWelcome {
		t.Errorf("step = %v, want Welcome", s.Step)
	}
	if s.Name != "" || s.Email != "" || len(s.Answers) != 0 || s.Page != 0 {
		t.Error("identity, answers, and pagination should clear")
	}
	if s.Result != nil || s.Plan != nil {
		t.Error("result and plan should clear")
	}
	if s.SaveError != nil || s.PlanSaveError != nil || s.PlanLoadError != nil || s.Notice != nil {
		t.Error("all error annotations should clear")
	}
}

// End-to-end: submit with a persistence failure and verify results are
// still reachable with scores intact and the annotation set.
func TestSubmitFlowWithPersistenceFailure(t *testing.T) {
	s := identified(t)
	for p := 0; p < catalog.TotalPages(); p++ {
		s = answerPage(s, p)
		if p < catalog.TotalPages()-1 {
			var warn *i18n.Text
			s, warn = s.NextPage()
			if warn != nil {
				t.Fatalf("page %d: unexpected warning: %v", p, *warn)
			}
		}
	}

	s, warn := s.Calculate("sub-e2e", time.Now())
	if warn != nil {
		t.Fatalf("unexpected warning: %v", *warn)
	}
	s = s.BeginSaving()
	if s.Step != StepSaving {
		t.Fatalf("step = %v, want Saving", s.Step)
	}

	s = s.FinishSave(0, &i18n.MsgSavingErrorDB)

	if s.Step != StepResults {
		t.Fatalf("step = %v, want Results", s.Step)
	}
	if s.Result == nil || len(s.Result.AllScores) != len(catalog.Gifts) {
		t.Fatal("scores must be intact")
	}
	if s.Result.SaveError == nil || s.Result.SaveError.In(i18n.EN) == "" {
		t.Fatal("save error annotation must be non-empty")
	}
}
