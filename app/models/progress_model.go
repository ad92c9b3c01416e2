package models

import (
	"time"

	"github.com/google/uuid"
)

type Progress struct {
	UserID                 uuid.UUID   `json:"user_id" db:"user_id"`
	CurrentStreak          int         `json:"current_streak" db:"current_streak"`
	LongestStreak          int         `json:"longest_streak" db:"longest_streak"`
	TotalWorkoutsCompleted int         `json:"total_workouts_completed" db:"total_workouts_completed"`
	TotalMealsLogged       int         `json:"total_meals_logged" db:"total_meals_logged"`
	WeeklyCompletionRate   map[int]int `json:"weekly_completion_rate" db:"weekly_completion_rate"`
	LastActiveDate         time.Time   `json:"last_active_date" db:"last_active_date"`
	UpdatedAt              time.Time   `json:"updated_at" db:"updated_at"`
}

type WorkoutLog struct {
	ID                 uuid.UUID        `json:"id" db:"id"`
	UserID             uuid.UUID        `json:"user_id" db:"user_id"`
	WorkoutID          uuid.UUID        `json:"workout_id" db:"workout_id"`
	ExercisesCompleted []ExerciseResult `json:"exercises_completed" db:"exercises_completed"`
	Notes              string           `json:"notes,omitempty" db:"notes"`
	CompletedAt        time.Time        `json:"completed_at" db:"completed_at"`
}

type MealLog struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	MealID      uuid.UUID `json:"meal_id" db:"meal_id"`
	Skipped     bool      `json:"skipped" db:"skipped"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}

// DayActivity is one week row of the activity grid, Monday first.
// Workouts score 2 points, meals 1.
type DayActivity struct {
	Monday    int `json:"monday"`
	Tuesday   int `json:"tuesday"`
	Wednesday int `json:"wednesday"`
	Thursday  int `json:"thursday"`
	Friday    int `json:"friday"`
	Saturday  int `json:"saturday"`
	Sunday    int `json:"sunday"`
}

type WeeklyActivity struct {
	WeekNumber int         `json:"week_number"`
	WeekStart  string      `json:"week_start"`
	WeekEnd    string      `json:"week_end"`
	Days       DayActivity `json:"days"`
}
