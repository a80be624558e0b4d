package taxlot

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want err=%v", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddYearsNormalizesLeapDay(t *testing.T) {
	got := NewDate(2024, time.February, 29).AddYears(1)
	want := NewDate(2025, time.March, 1)
	if got != want {
		t.Errorf("AddYears(1) = %v, want %v", got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	from := NewDate(2023, time.January, 1)
	if got := from.DaysUntil(NewDate(2023, time.January, 31)); got != 30 {
		t.Errorf("DaysUntil = %d, want 30", got)
	}
	// 2024 is a leap year, so a full year from 2023-03-01 spans 366 days.
	if got := NewDate(2023, time.March, 1).DaysUntil(NewDate(2024, time.March, 1)); got != 366 {
		t.Errorf("DaysUntil over leap year = %d, want 366", got)
	}
}

func TestLongTermBoundary(t *testing.T) {
	acquired := MustParse("2023-01-01")

	if LongTerm(acquired, MustParse("2024-01-01")) {
		t.Errorf("disposal exactly one year later must still be short-term")
	}
	if !LongTerm(acquired, MustParse("2024-01-02")) {
		t.Errorf("disposal one year and a day later must be long-term")
	}
}

func TestLongTermLeapYearBoundary(t *testing.T) {
	// Acquired on Feb 29: one calendar year later normalizes to Mar 1.
	acquired := MustParse("2024-02-29")

	if LongTerm(acquired, MustParse("2025-03-01")) {
		t.Errorf("2025-03-01 is the one-year mark, still short-term")
	}
	if !LongTerm(acquired, MustParse("2025-03-02")) {
		t.Errorf("2025-03-02 is past the one-year mark, long-term")
	}
}
