package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekDates(t *testing.T) {
	start := date(2026, time.March, 2)

	s1, e1 := WeekDates(start, 1)
	if !s1.Equal(start) {
		t.Fatalf("week 1 start = %v, want %v", s1, start)
	}
	wantEnd := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	if !e1.Equal(wantEnd) {
		t.Fatalf("week 1 end = %v, want %v", e1, wantEnd)
	}

	s2, _ := WeekDates(start, 2)
	if !s2.Equal(start.AddDate(0, 0, 7)) {
		t.Fatalf("week 2 start = %v", s2)
	}
}

func TestCurrentWeekNumber(t *testing.T) {
	start := date(2026, time.March, 2)
	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"first day", start, 1},
		{"sixth day", start.AddDate(0, 0, 6), 1},
		{"second week", start.AddDate(0, 0, 7), 2},
		{"day 13", start.AddDate(0, 0, 13), 2},
		{"far future clamps", start.AddDate(0, 0, 200), 12},
		{"before start clamps", start.AddDate(0, 0, -5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentWeekNumber(start, tt.today); got != tt.want {
				t.Fatalf("CurrentWeekNumber = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.August, 29, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 29, 23, 59, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("same calendar day reported as different")
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Fatal("different days reported as same")
	}
}

func TestMondayOf(t *testing.T) {
	monday := date(2026, time.August, 24)
	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday},
		{"wednesday", date(2026, time.August, 26)},
		{"sunday", date(2026, time.August, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MondayOf(tt.in); !got.Equal(monday) {
				t.Fatalf("MondayOf(%v) = %v, want %v", tt.in, got, monday)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := date(2026, time.August, 29)
	if got := DaysUntil(today.AddDate(0, 0, 10), today); got != 10 {
		t.Fatalf("DaysUntil = %d, want 10", got)
	}
	if got := DaysUntil(today.AddDate(0, 0, -3), today); got != 0 {
		t.Fatalf("past goal date: DaysUntil = %d, want 0", got)
	}
}
