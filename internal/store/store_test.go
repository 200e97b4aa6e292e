package store

import (
	"context"
	"testing"
	"time"

	entschema "github.com/acampos/giftwise/ent/schema"
	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/plan"
	"github.com/acampos/giftwise/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared", nil)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(email string) *quiz.UserResult {
	scores := []quiz.GiftScore{
		{Gift: catalog.Gifts[0], Score: 15},
		{Gift: catalog.Gifts[1], Score: 12},
		{Gift: catalog.Gifts[2], Score: 9},
	}
	return &quiz.UserResult{
		SubmissionID: "sub-" + email,
		Name:         "Ana",
		Email:        email,
		TopGifts:     scores,
		AllScores:    scores,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultAppendAndMostRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	// No result yet.
	got, err := repo.MostRecentByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("most recent (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil result when none exist")
	}

	in := sampleResult("ana@example.com")
	id, err := repo.Append(ctx, in)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero assigned id")
	}

	got, err = repo.MostRecentByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Name != in.Name || got.Email != in.Email || got.SubmissionID != in.SubmissionID {
		t.Errorf("loaded result = %+v, want fields of %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected store-assigned creation time")
	}
	if len(got.TopGifts) != len(in.TopGifts) {
		t.Fatalf("top gifts len = %d, want %d", len(got.TopGifts), len(in.TopGifts))
	}
	for i, sc := range got.TopGifts {
		if sc.Gift.ID != in.TopGifts[i].Gift.ID || sc.Score != in.TopGifts[i].Score {
			t.Errorf("top gift %d = %s/%d, want %s/%d",
				i, sc.Gift.ID, sc.Score, in.TopGifts[i].Gift.ID, in.TopGifts[i].Score)
		}
	}
}

func TestMostRecentPicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	first := sampleResult("bob@example.com")
	first.SubmissionID = "first"
	if _, err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}

	// Creation timestamps come from the store clock.
	time.Sleep(5 * time.Millisecond)

	second := sampleResult("bob@example.com")
	second.SubmissionID = "second"
	if _, err := repo.Append(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	got, err := repo.MostRecentByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if got == nil || got.SubmissionID != "second" {
		t.Fatalf("most recent = %+v, want submission %q", got, "second")
	}
}

func TestResultKeepsUnknownGiftID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().GiftResult.Create().
		SetSubmissionID("legacy").
		SetName("Eva").
		SetUserEmail("eva@example.com").
		SetTopGifts([]entschema.GiftScoreDoc{{GiftID: "retired_gift", Score: 7}}).
		SetAllScores([]entschema.GiftScoreDoc{{GiftID: "retired_gift", Score: 7}}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed row: %v", err)
	}

	got, err := s.ResultRepo().MostRecentByEmail(ctx, "eva@example.com")
	if err != nil {
		t.Fatalf("most recent: %v", err)
	}
	if len(got.TopGifts) != 1 || got.TopGifts[0].Gift.ID != "retired_gift" {
		t.Fatalf("top gifts = %+v, want retired_gift carried through", got.TopGifts)
	}
}

func TestPlanLoadOrDefaultMissing(t *testing.T) {
	s := openTestStore(t)

	data, err := s.PlanRepo().LoadOrDefault(context.Background(), "no-such-key", "Teaching, Service")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if data.PrimaryGifts != "Teaching, Service" {
		t.Errorf("primary gifts = %q, want fallback", data.PrimaryGifts)
	}
	if data.SecondaryGifts != "" || data.Categories.Madurez {
		t.Error("missing document should load as the default shape")
	}
}

func TestPlanUpsertAndReload(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()
	key := SanitizeKey("carla@example.com")

	in := plan.Default("Leadership, Faith, Mercy")
	in.SecondaryGifts = "Hospitality"
	in.Categories = plan.Categories{Madurez: true}
	in.Timeline1Year = "Lead a small group"
	if err := repo.Upsert(ctx, key, in, "Carla", "carla@example.com"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// The stored primary gifts win over a newer computed fallback.
	got, err := repo.LoadOrDefault(ctx, key, "Giving, Evangelism")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PrimaryGifts != "Leadership, Faith, Mercy" {
		t.Errorf("primary gifts = %q, want stored value kept", got.PrimaryGifts)
	}
	if got.SecondaryGifts != "Hospitality" || !got.Categories.Madurez || got.Categories.Numericos {
		t.Errorf("loaded plan = %+v, want stored fields back", got)
	}
	if got.Timeline1Year != "Lead a small group" {
		t.Errorf("timeline = %q", got.Timeline1Year)
	}
	if got.LastUpdated.IsZero() {
		t.Error("expected stamped last-updated time")
	}

	// A second save replaces edited fields.
	in.Timeline1Year = "Lead two small groups"
	if err := repo.Upsert(ctx, key, in, "Carla", "carla@example.com"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.LoadOrDefault(ctx, key, "")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Timeline1Year != "Lead two small groups" {
		t.Errorf("timeline after update = %q", got.Timeline1Year)
	}
}

func TestPlanMergeKeepsMissingFieldsDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Simulate a document written before newer fields existed.
	_, err := s.Client().DevelopmentPlan.Create().
		SetDocKey("old-doc").
		SetData(map[string]any{"step1_primaryGifts": "Mercy"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed row: %v", err)
	}

	got, err := s.PlanRepo().LoadOrDefault(ctx, "old-doc", "Teaching")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PrimaryGifts != "Mercy" {
		t.Errorf("primary gifts = %q, want stored value", got.PrimaryGifts)
	}
	if got.SecondaryGifts != "" || got.ActionPlanDetails != "" {
		t.Error("fields absent from the document should stay default")
	}
}

func TestPlanRejectsMalformedDocument(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows := []struct {
		key  string
		data map[string]any
	}{
		{"bad-type", map[string]any{"step1_primaryGifts": 42}},
		{"bad-key", map[string]any{"bogusField": "x"}},
	}
	for _, row := range rows {
		_, err := s.Client().DevelopmentPlan.Create().
			SetDocKey(row.key).
			SetData(row.data).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed row %s: %v", row.key, err)
		}
	}

	for _, row := range rows {
		if _, err := s.PlanRepo().LoadOrDefault(ctx, row.key, ""); err == nil {
			t.Errorf("%s: expected validation error", row.key)
		}
	}
}
