package utils

import "testing"

func TestRandomNumericString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := RandomNumericString(6)
		if len(s) != 6 {
			t.Fatalf("Expected 6 characters, got %d (%q)", len(s), s)
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				t.Fatalf("Non-digit character %q in %q", r, s)
			}
		}
		seen[s] = true
	}
	// 50 draws of a 6-digit code colliding down to a single value would
	// mean the generator is broken, not unlucky.
	if len(seen) < 2 {
		t.Fatal("Generator returned the same code for every draw")
	}
}
