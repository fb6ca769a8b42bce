package utils

import (
	"strings"
	"testing"
)

func TestGenerateMeetupCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateMeetupCode()
		if err != nil {
			t.Fatalf("GenerateMeetupCode() error: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), CodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeChars, r) {
				t.Fatalf("code %q contains invalid character %q", code, r)
			}
		}
		seen[code] = true
	}
	// Not a uniqueness guarantee, but 100 identical codes would mean a
	// broken generator.
	if len(seen) < 2 {
		t.Errorf("generator produced %d distinct codes out of 100", len(seen))
	}
}
