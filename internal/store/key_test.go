package store

import (
	"strings"
	"testing"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain email", "ana@example.com", "ana@example.com"},
		{"slash and hash", "a/b#c", "a_b_c"},
		{"all illegal chars", "a/b#c$d[e]f", "a_b_c_d_e_f"},
		{"single dot", ".", "id__"},
		{"double dot", "..", "id___"},
		{"dot inside is kept", "a.b", "a.b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeKey(tt.in); got != tt.want {
				t.Errorf("SanitizeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeKeyNeverEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "//", "[]", "#$#"} {
		got := SanitizeKey(in)
		if strings.TrimSpace(got) == "" {
			t.Errorf("SanitizeKey(%q) returned blank key", in)
		}
	}

	if !strings.HasPrefix(SanitizeKey(""), "default_id_") {
		t.Error("empty input should yield a default_id_ key")
	}
	if !strings.HasPrefix(SanitizeKey("  "), "empty_id_") {
		t.Error("whitespace input should yield an empty_id_ key")
	}
	// Illegal chars collapse to underscores, not whitespace, so they
	// keep a deterministic key.
	if got := SanitizeKey("//"); got != "__" {
		t.Errorf("SanitizeKey(%q) = %q, want %q", "//", got, "__")
	}
}

func TestSanitizeKeyTruncates(t *testing.T) {
	long := strings.Repeat("a", maxKeyLen+100)
	if got := SanitizeKey(long); len(got) != maxKeyLen {
		t.Errorf("len = %d, want %d", len(SanitizeKey(long)), maxKeyLen)
	}
}
