package model

import (
	"regexp"
	"testing"
	"time"
)

func TestNewCodeFormat(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	code := NewCode(now)

	pattern := regexp.MustCompile(`^PRJ-202608-[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{4}$`)
	if !pattern.MatchString(code) {
		t.Errorf("code %q does not match expected format", code)
	}
}

func TestNewCodeVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewCode(now)] = true
	}
	// Collisions within 50 draws of a 31^4 space would indicate a broken
	// random suffix
	if len(seen) < 45 {
		t.Errorf("only %d distinct codes in 50 draws", len(seen))
	}
}
