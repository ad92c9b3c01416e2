package services

import "math"

// WorkoutDays maps weekly frequency to the days the plan schedules,
// 1 = Monday. Unrecognized frequencies get the 3-day pattern.
func WorkoutDays(frequency int) []int {
	switch frequency {
	case 4:
		return []int{1, 2, 4, 6}
	case 5:
		return []int{1, 2, 3, 4, 5}
	default:
		return []int{1, 3, 5}
	}
}

// WorkoutDuration returns the session length in minutes for a week.
func WorkoutDuration(weekNumber int) int {
	switch {
	case weekNumber <= 2:
		return 15
	case weekNumber <= 4:
		return 20
	case weekNumber <= 7:
		return 25
	default:
		return 30
	}
}

// WeekWorkoutType is the label applied to a whole week's sessions:
// mixed for the ramp-in and taper, strength for the middle block.
func WeekWorkoutType(weekNumber int) string {
	if weekNumber >= 5 && weekNumber <= 8 {
		return "strength"
	}
	return "mixed"
}

// TargetDifficulty ramps intensity in from week 1: everyone starts at
// beginner, advanced users pass through intermediate in weeks 3-4.
func TargetDifficulty(fitnessLevel string, weekNumber int) string {
	if weekNumber <= 2 && fitnessLevel != "beginner" {
		return "beginner"
	}
	if weekNumber <= 4 && fitnessLevel == "advanced" {
		return "intermediate"
	}
	return fitnessLevel
}

// CalculateWeekCompletion weighs workouts at 60% and meals at 40%.
// A zero total contributes zero rather than dividing by it.
func CalculateWeekCompletion(totalWorkouts, completedWorkouts, totalMeals, loggedMeals int) int {
	var workoutPct, mealPct float64
	if totalWorkouts > 0 {
		workoutPct = float64(completedWorkouts) / float64(totalWorkouts) * 100
	}
	if totalMeals > 0 {
		mealPct = float64(loggedMeals) / float64(totalMeals) * 100
	}
	return int(math.Round(workoutPct*0.6 + mealPct*0.4))
}

// ShouldUnlockNextWeek gates week N+1 on week N reaching 80%.
func ShouldUnlockNextWeek(completionPercentage int) bool {
	return completionPercentage >= 80
}
