package services

import "testing"

func TestWorkoutDays(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		want      []int
	}{
		{"three days", 3, []int{1, 3, 5}},
		{"four days", 4, []int{1, 2, 4, 6}},
		{"five days", 5, []int{1, 2, 3, 4, 5}},
		{"unrecognized falls back", 7, []int{1, 3, 5}},
		{"zero falls back", 0, []int{1, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkoutDays(tt.frequency)
			if len(got) != len(tt.want) {
				t.Fatalf("WorkoutDays(%d) = %v, want %v", tt.frequency, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("WorkoutDays(%d) = %v, want %v", tt.frequency, got, tt.want)
				}
			}
		})
	}
}

func TestWorkoutDuration(t *testing.T) {
	tests := []struct {
		week, want int
	}{
		{1, 15}, {2, 15},
		{3, 20}, {4, 20},
		{5, 25}, {7, 25},
		{8, 30}, {12, 30},
	}
	for _, tt := range tests {
		if got := WorkoutDuration(tt.week); got != tt.want {
			t.Errorf("WorkoutDuration(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestWeekWorkoutType(t *testing.T) {
	tests := []struct {
		week int
		want string
	}{
		{1, "mixed"}, {4, "mixed"},
		{5, "strength"}, {8, "strength"},
		{9, "mixed"}, {12, "mixed"},
	}
	for _, tt := range tests {
		if got := WeekWorkoutType(tt.week); got != tt.want {
			t.Errorf("WeekWorkoutType(%d) = %q, want %q", tt.week, got, tt.want)
		}
	}
}

func TestTargetDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		level string
		week  int
		want  string
	}{
		{"beginner stays beginner", "beginner", 1, "beginner"},
		{"beginner late plan", "beginner", 12, "beginner"},
		{"intermediate ramps in", "intermediate", 2, "beginner"},
		{"intermediate from week 3", "intermediate", 3, "intermediate"},
		{"advanced starts at beginner", "advanced", 1, "beginner"},
		{"advanced passes intermediate", "advanced", 3, "intermediate"},
		{"advanced at full level", "advanced", 5, "advanced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetDifficulty(tt.level, tt.week); got != tt.want {
				t.Fatalf("TargetDifficulty(%q, %d) = %q, want %q", tt.level, tt.week, got, tt.want)
			}
		})
	}
}

func TestCalculateWeekCompletion(t *testing.T) {
	tests := []struct {
		name                                                 string
		totalWorkouts, completedWorkouts, totalMeals, logged int
		want                                                 int
	}{
		{"nothing done", 3, 0, 21, 0, 0},
		{"everything done", 3, 3, 21, 21, 100},
		{"workouts only", 3, 3, 21, 0, 60},
		{"meals only", 3, 0, 21, 21, 40},
		{"partial blend", 5, 4, 21, 21, 88},
		{"zero totals contribute zero", 0, 0, 0, 0, 0},
		{"no workouts scheduled", 0, 0, 21, 21, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWeekCompletion(tt.totalWorkouts, tt.completedWorkouts, tt.totalMeals, tt.logged)
			if got != tt.want {
				t.Fatalf("CalculateWeekCompletion = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShouldUnlockNextWeek(t *testing.T) {
	if ShouldUnlockNextWeek(79) {
		t.Fatal("79 must not unlock")
	}
	if !ShouldUnlockNextWeek(80) {
		t.Fatal("80 must unlock")
	}
	if !ShouldUnlockNextWeek(100) {
		t.Fatal("100 must unlock")
	}
}
