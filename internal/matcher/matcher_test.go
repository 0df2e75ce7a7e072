package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"printer", "printer", true},
		{"system/exec", "system/exec", true},
		{"system/exec", "system/exec2", false},

		// Namespace matches
		{"system/", "system/exec", true},
		{"system/", "system/storage", true},
		{"sys/", "system/exec", false},
		{"firestore/", "firestore/config", true},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}

func TestAny(t *testing.T) {
	patterns := []string{"printer", "system/"}
	if !Any(patterns, "system/storage") {
		t.Fatalf("expected system/storage to match %v", patterns)
	}
	if Any(patterns, "nop") {
		t.Fatalf("expected nop not to match %v", patterns)
	}
	if Any(nil, "printer") {
		t.Fatalf("expected no match for empty pattern list")
	}
}
