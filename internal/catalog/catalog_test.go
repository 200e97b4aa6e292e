package catalog

import "testing"

func TestQuestionIDsSequential(t *testing.T) {
	for i, q := range Questions {
		if q.ID != i+1 {
			t.Fatalf("question at index %d has id %d, want %d", i, q.ID, i+1)
		}
		if q.Text.EN == "" || q.Text.ES == "" {
			t.Errorf("question %d is missing a translation", q.ID)
		}
	}
}

func TestEveryGiftQuestionExists(t *testing.T) {
	ids := make(map[int]bool, len(Questions))
	for _, q := range Questions {
		ids[q.ID] = true
	}

	seen := make(map[int]string)
	for _, g := range Gifts {
		if len(g.Questions) == 0 {
			t.Errorf("gift %s has no questions", g.ID)
		}
		for _, qid := range g.Questions {
			if !ids[qid] {
				t.Errorf("gift %s references unknown question %d", g.ID, qid)
			}
			if owner, dup := seen[qid]; dup {
				t.Errorf("question %d claimed by both %s and %s", qid, owner, g.ID)
			}
			seen[qid] = g.ID
		}
	}
}

func TestTotalPages(t *testing.T) {
	want := (len(Questions) + QuestionsPerPage - 1) / QuestionsPerPage
	if got := TotalPages(); got != want {
		t.Errorf("TotalPages() = %d, want %d", got, want)
	}
}

func TestPageSlicing(t *testing.T) {
	total := 0
	for p := 0; p < TotalPages(); p++ {
		page := Page(p)
		if len(page) == 0 {
			t.Fatalf("page %d is empty", p)
		}
		if p < TotalPages()-1 && len(page) != QuestionsPerPage {
			t.Errorf("page %d has %d questions, want %d", p, len(page), QuestionsPerPage)
		}
		total += len(page)
	}
	if total != len(Questions) {
		t.Errorf("pages cover %d questions, want %d", total, len(Questions))
	}

	if Page(-1) != nil {
		t.Error("negative page should be nil")
	}
	if Page(TotalPages()) != nil {
		t.Error("out-of-range page should be nil")
	}
}

func TestGiftByID(t *testing.T) {
	g, ok := GiftByID("teaching")
	if !ok {
		t.Fatal("expected to find teaching gift")
	}
	if g.Name.EN != "Teaching" {
		t.Errorf("Name.EN = %q, want Teaching", g.Name.EN)
	}

	if _, ok := GiftByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestRatingScale(t *testing.T) {
	if len(RatingScale) != 5 {
		t.Fatalf("rating scale has %d values, want 5", len(RatingScale))
	}
	for i, r := range RatingScale {
		if r.Value != i+1 {
			t.Errorf("rating at index %d has value %d, want %d", i, r.Value, i+1)
		}
	}
}
