package validation

import "testing"

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-15", "1999-12-31"}
	invalid := []string{"", "2026-1-5", "15-01-2026", "2026/01/15", "tomorrow"}

	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidUSN(t *testing.T) {
	valid := []string{"1MS21CS001", "AB", "X1Y2Z3"}
	invalid := []string{"", "a", "1ms21cs001", "HAS SPACE", "WAY-TOO"}

	for _, u := range valid {
		if !IsValidUSN(u) {
			t.Errorf("IsValidUSN(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUSN(u) {
			t.Errorf("IsValidUSN(%q) = true, want false", u)
		}
	}
}
