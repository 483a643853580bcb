package company

import "testing"

func TestBaseCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Acme Corp", "ACMECO"},
		{"A.B. Ltd", "ABLTD"},
		{"x", "X"},
		{"!!!", "COMP"},
		{"", "COMP"},
	}
	for _, tc := range cases {
		if got := BaseCode(tc.name); got != tc.want {
			t.Fatalf("BaseCode(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCodeCandidate(t *testing.T) {
	if got := CodeCandidate("ACME", 0); got != "ACME" {
		t.Fatalf("candidate 0 should be the base, got %q", got)
	}
	if got := CodeCandidate("ACME", 2); got != "ACME2" {
		t.Fatalf("expected ACME2, got %q", got)
	}
}
