package services

import (
	"testing"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
)

func day(n int) time.Time {
	return time.Date(2026, time.August, n, 10, 30, 0, 0, time.UTC)
}

func TestApplyActivityFirstEvent(t *testing.T) {
	p := models.Progress{}
	ApplyActivity(&p, day(10))

	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Fatalf("streaks = %d/%d, want 1/1", p.CurrentStreak, p.LongestStreak)
	}
	if p.LastActiveDate.Hour() != 0 {
		t.Fatal("LastActiveDate must be normalized to midnight")
	}
}

func TestApplyActivityConsecutiveDays(t *testing.T) {
	p := models.Progress{}
	ApplyActivity(&p, day(10))
	ApplyActivity(&p, day(11))
	ApplyActivity(&p, day(12))

	if p.CurrentStreak != 3 {
		t.Fatalf("CurrentStreak = %d, want 3", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Fatalf("LongestStreak = %d, want 3", p.LongestStreak)
	}
}

func TestApplyActivityGapResets(t *testing.T) {
	p := models.Progress{}
	ApplyActivity(&p, day(10))
	ApplyActivity(&p, day(11))
	ApplyActivity(&p, day(14))

	if p.CurrentStreak != 1 {
		t.Fatalf("CurrentStreak = %d, want reset to 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Fatalf("LongestStreak = %d, want 2 preserved", p.LongestStreak)
	}
}

func TestApplyActivitySameDayIdempotent(t *testing.T) {
	p := models.Progress{}
	ApplyActivity(&p, day(10))
	before := p
	ApplyActivity(&p, day(10).Add(5*time.Hour))

	if p.CurrentStreak != before.CurrentStreak || p.LongestStreak != before.LongestStreak {
		t.Fatalf("second event on the same day changed streaks: %+v vs %+v", before, p)
	}
	if !p.LastActiveDate.Equal(before.LastActiveDate) {
		t.Fatal("second event on the same day moved LastActiveDate")
	}
}

func TestApplyActivityLongestMonotonic(t *testing.T) {
	p := models.Progress{}
	for _, n := range []int{1, 2, 3, 4, 5} {
		ApplyActivity(&p, day(n))
	}
	if p.LongestStreak != 5 {
		t.Fatalf("LongestStreak = %d, want 5", p.LongestStreak)
	}

	ApplyActivity(&p, day(20))
	ApplyActivity(&p, day(21))
	if p.LongestStreak != 5 {
		t.Fatalf("LongestStreak dropped to %d after reset", p.LongestStreak)
	}
	if p.CurrentStreak != 2 {
		t.Fatalf("CurrentStreak = %d, want 2", p.CurrentStreak)
	}
}

func TestRebuildStreakEmpty(t *testing.T) {
	current, longest := RebuildStreak(nil, day(29))
	if current != 0 || longest != 0 {
		t.Fatalf("empty logs: %d/%d, want 0/0", current, longest)
	}
}

func TestRebuildStreakActiveRun(t *testing.T) {
	stamps := []time.Time{day(27), day(28), day(29)}
	current, longest := RebuildStreak(stamps, day(29))
	if current != 3 || longest != 3 {
		t.Fatalf("got %d/%d, want 3/3", current, longest)
	}
}

func TestRebuildStreakEndedYesterdayStillCounts(t *testing.T) {
	stamps := []time.Time{day(27), day(28)}
	current, _ := RebuildStreak(stamps, day(29))
	if current != 2 {
		t.Fatalf("current = %d, want 2 when last activity was yesterday", current)
	}
}

func TestRebuildStreakStaleRunIsZero(t *testing.T) {
	stamps := []time.Time{day(20), day(21), day(22)}
	current, longest := RebuildStreak(stamps, day(29))
	if current != 0 {
		t.Fatalf("current = %d, want 0 for a run that ended a week ago", current)
	}
	if longest != 3 {
		t.Fatalf("longest = %d, want 3", longest)
	}
}

func TestRebuildStreakDeduplicatesDays(t *testing.T) {
	stamps := []time.Time{
		day(28), day(28).Add(2 * time.Hour), day(28).Add(9 * time.Hour),
		day(29), day(29).Add(time.Hour),
	}
	current, longest := RebuildStreak(stamps, day(29))
	if current != 2 || longest != 2 {
		t.Fatalf("got %d/%d, want 2/2", current, longest)
	}
}

func TestRebuildStreakFindsLongestAnywhere(t *testing.T) {
	stamps := []time.Time{
		day(1), day(2), day(3), day(4), // old 4-day run
		day(28), day(29), // current 2-day run
	}
	current, longest := RebuildStreak(stamps, day(29))
	if current != 2 {
		t.Fatalf("current = %d, want 2", current)
	}
	if longest != 4 {
		t.Fatalf("longest = %d, want 4", longest)
	}
}

func TestRebuildStreakAgreesWithApplyActivity(t *testing.T) {
	days := []int{3, 4, 5, 9, 10, 11, 12}

	p := models.Progress{}
	var stamps []time.Time
	for _, n := range days {
		ApplyActivity(&p, day(n))
		stamps = append(stamps, day(n))
	}

	current, longest := RebuildStreak(stamps, day(12))
	if current != p.CurrentStreak {
		t.Fatalf("current: rebuild %d vs incremental %d", current, p.CurrentStreak)
	}
	if longest != p.LongestStreak {
		t.Fatalf("longest: rebuild %d vs incremental %d", longest, p.LongestStreak)
	}
}
