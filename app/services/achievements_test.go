package services

import "testing"

func TestBadgeEligibility(t *testing.T) {
	tests := []struct {
		name  string
		badge string
		stats BadgeStats
		want  bool
	}{
		{"first workout earned", "first_workout", BadgeStats{TotalWorkouts: 1}, true},
		{"first workout not earned", "first_workout", BadgeStats{}, false},
		{"first meal earned", "first_meal", BadgeStats{TotalMeals: 1}, true},
		{"streak 3 via longest", "streak_3", BadgeStats{LongestStreak: 3}, true},
		{"streak 3 not yet", "streak_3", BadgeStats{LongestStreak: 2}, false},
		{"streak survives reset", "streak_7", BadgeStats{CurrentStreak: 0, LongestStreak: 9}, true},
		{"streak 30", "streak_30", BadgeStats{LongestStreak: 30}, true},
		{"week 1 complete", "week_1_complete", BadgeStats{WeeksAdvanced: 1}, true},
		{"week 4 needs four", "week_4_complete", BadgeStats{WeeksAdvanced: 3}, false},
		{"week 12 complete", "week_12_complete", BadgeStats{WeeksAdvanced: 12}, true},
		{"ten workouts", "workouts_10", BadgeStats{TotalWorkouts: 10}, true},
		{"fifty workouts short", "workouts_50", BadgeStats{TotalWorkouts: 49}, false},
		{"thirty meals", "meals_30", BadgeStats{TotalMeals: 30}, true},
		{"unknown badge", "does_not_exist", BadgeStats{TotalWorkouts: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := badgeEligible(tt.badge, tt.stats); got != tt.want {
				t.Fatalf("badgeEligible(%q) = %v, want %v", tt.badge, got, tt.want)
			}
		})
	}
}

func TestBadgeCatalogComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, badge := range BadgeCatalog {
		if badge.ID == "" || badge.Name == "" || badge.Description == "" {
			t.Fatalf("incomplete badge definition: %+v", badge)
		}
		if seen[badge.ID] {
			t.Fatalf("duplicate badge id %q", badge.ID)
		}
		seen[badge.ID] = true
	}
	if len(BadgeCatalog) != 12 {
		t.Fatalf("catalog has %d badges, want 12", len(BadgeCatalog))
	}
}
