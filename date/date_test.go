package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{"Zero Date", Date{}, `""`},
		{"Non-Zero Date", New(2024, 5, 21), `"2024-05-21"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.expected)
			}
			var back Date
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if back != tt.date {
				t.Errorf("json.Unmarshal() = %v, want %v", back, tt.date)
			}
		})
	}
}

func TestDate_Normalization(t *testing.T) {
	// Day 32 of January normalizes to February 1st.
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
	if got, want := New(2025, time.January, 31).Add(1), New(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01-15", "2024-01-15", 0},
		{"2024-01-15", "2024-02-14", 0}, // not a whole month yet
		{"2024-01-15", "2024-02-15", 1},
		{"2024-01-15", "2025-01-15", 12},
		{"2024-01-31", "2024-03-01", 1},
		{"2024-02-15", "2024-01-15", -1},
	}
	for _, tt := range tests {
		got := MonthsBetween(MustParse(tt.from), MustParse(tt.to))
		if got != tt.want {
			t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2025-03-10"), MustParse("2025-03-20"))

	if !r.Contains(MustParse("2025-03-10")) || !r.Contains(MustParse("2025-03-20")) {
		t.Error("Contains() must include both boundaries")
	}
	if r.Contains(MustParse("2025-03-21")) {
		t.Error("Contains() must exclude days after To")
	}
	if got, want := r.Days(), 11; got != want {
		t.Errorf("Days() = %d, want %d", got, want)
	}

	march := Month(2025, time.March)
	if got, want := march.Days(), 31; got != want {
		t.Errorf("Month(2025, March).Days() = %d, want %d", got, want)
	}

	overlap := r.Intersect(NewRange(MustParse("2025-03-15"), MustParse("2025-04-15")))
	if got, want := overlap, NewRange(MustParse("2025-03-15"), MustParse("2025-03-20")); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}

	empty := r.Intersect(Month(2025, time.June))
	if !empty.IsEmpty() || empty.Days() != 0 {
		t.Errorf("disjoint Intersect() should be empty, got %v (%d days)", empty, empty.Days())
	}
}
