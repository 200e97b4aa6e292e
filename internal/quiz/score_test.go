package quiz

import (
	"testing"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
)

func testGifts() []catalog.GiftDefinition {
	return []catalog.GiftDefinition{
		{ID: "alpha", Name: i18n.Text{EN: "Alpha", ES: "Alfa"}, Questions: []int{1, 2, 3}},
		{ID: "beta", Name: i18n.Text{EN: "Beta", ES: "Beta"}, Questions: []int{4, 5}},
		{ID: "gamma", Name: i18n.Text{EN: "Gamma", ES: "Gama"}, Questions: []int{6}},
	}
}

func TestScoreSumsAnsweredQuestions(t *testing.T) {
	answers := map[int]int{1: 5, 2: 3} // question 3 unanswered, contributes 0
	scores := Score(answers, testGifts())

	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	if scores[0].Score != 8 {
		t.Errorf("alpha score = %d, want 8", scores[0].Score)
	}
	if scores[1].Score != 0 {
		t.Errorf("beta score = %d, want 0", scores[1].Score)
	}
}

func TestScoreIgnoresUnrelatedAnswers(t *testing.T) {
	answers := map[int]int{6: 4, 99: 5}
	scores := Score(answers, testGifts())
	if scores[2].Score != 4 {
		t.Errorf("gamma score = %d, want 4", scores[2].Score)
	}
	if scores[0].Score != 0 {
		t.Errorf("alpha score = %d, want 0", scores[0].Score)
	}
}

func TestRankDescending(t *testing.T) {
	scores := []GiftScore{
		{Gift: catalog.GiftDefinition{ID: "a"}, Score: 3},
		{Gift: catalog.GiftDefinition{ID: "b"}, Score: 10},
		{Gift: catalog.GiftDefinition{ID: "c"}, Score: 7},
	}
	ranked := Rank(scores)

	want := []string{"b", "c", "a"}
	for i, id := range want {
		if ranked[i].Gift.ID != id {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Gift.ID, id)
		}
	}

	// Input order untouched.
	if scores[0].Gift.ID != "a" {
		t.Error("Rank must not mutate its input")
	}
}

func TestRankStableOnTies(t *testing.T) {
	scores := []GiftScore{
		{Gift: catalog.GiftDefinition{ID: "first"}, Score: 5},
		{Gift: catalog.GiftDefinition{ID: "second"}, Score: 5},
		{Gift: catalog.GiftDefinition{ID: "third"}, Score: 5},
	}
	ranked := Rank(scores)

	// Equal scores keep catalog declaration order.
	for i, id := range []string{"first", "second", "third"} {
		if ranked[i].Gift.ID != id {
			t.Errorf("rank %d = %s, want %s (stable tie order)", i, ranked[i].Gift.ID, id)
		}
	}
}

func TestTopGifts(t *testing.T) {
	ranked := Rank(Score(map[int]int{1: 5, 4: 4, 6: 3}, testGifts()))
	top := TopGifts(ranked)

	if len(top) != 3 {
		t.Fatalf("got %d top gifts, want 3", len(top))
	}
	if top[0].Gift.ID != "alpha" || top[0].Score != 5 {
		t.Errorf("top[0] = %s/%d, want alpha/5", top[0].Gift.ID, top[0].Score)
	}
}

func TestTopGiftsShortCatalog(t *testing.T) {
	ranked := []GiftScore{{Gift: catalog.GiftDefinition{ID: "only"}, Score: 1}}
	top := TopGifts(ranked)
	if len(top) != 1 {
		t.Fatalf("got %d top gifts, want 1", len(top))
	}
}

func TestPrimaryGiftsText(t *testing.T) {
	top := []GiftScore{
		{Gift: catalog.GiftDefinition{Name: i18n.Text{EN: "Teaching", ES: "Enseñanza"}}},
		{Gift: catalog.GiftDefinition{Name: i18n.Text{EN: "Mercy", ES: "Misericordia"}}},
	}

	if got := PrimaryGiftsText(top, i18n.EN); got != "Teaching, Mercy" {
		t.Errorf("EN text = %q", got)
	}
	if got := PrimaryGiftsText(top, i18n.ES); got != "Enseñanza, Misericordia" {
		t.Errorf("ES text = %q", got)
	}
	if got := PrimaryGiftsText(nil, i18n.EN); got == "" {
		t.Error("empty top gifts should still produce a message")
	}
}
