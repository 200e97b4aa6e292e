package i18n

import "testing"

func TestInResolvesLanguage(t *testing.T) {
	txt := Text{EN: "hello", ES: "hola"}

	if got := txt.In(EN); got != "hello" {
		t.Errorf("In(EN) = %q, want %q", got, "hello")
	}
	if got := txt.In(ES); got != "hola" {
		t.Errorf("In(ES) = %q, want %q", got, "hola")
	}
}

func TestInFallsBackToEnglish(t *testing.T) {
	txt := Text{EN: "only english"}
	if got := txt.In(ES); got != "only english" {
		t.Errorf("In(ES) = %q, want english fallback", got)
	}
}

func TestToggle(t *testing.T) {
	if Toggle(EN) != ES {
		t.Error("Toggle(EN) should be ES")
	}
	if Toggle(ES) != EN {
		t.Error("Toggle(ES) should be EN")
	}
}
