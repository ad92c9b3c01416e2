package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutExercise is one prescribed exercise inside a generated workout.
type WorkoutExercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  int    `json:"reps"`
	Rest  int    `json:"rest"` // seconds
	Notes string `json:"notes,omitempty"`
}

// ExerciseDefinition is a static catalog entry. The catalog is loaded at
// process start and never mutated.
type ExerciseDefinition struct {
	Name          string   `json:"name"`
	Sets          int      `json:"sets"`
	Reps          int      `json:"reps"`
	Rest          int      `json:"rest"`
	Equipment     string   `json:"equipment"`  // none | home | gym
	Difficulty    string   `json:"difficulty"` // beginner | intermediate | advanced
	TargetMuscles []string `json:"target_muscles"`
	WorkoutType   string   `json:"workout_type"` // strength | cardio | flexibility | mixed
	ImpactLevel   string   `json:"impact_level"` // low | medium | high
	Goals         []string `json:"goals"`
}

type Workout struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	Name        string            `json:"name" db:"name"`
	WeekNumber  int               `json:"week_number" db:"week_number"`
	Day         int               `json:"day" db:"day"` // 1 = Monday
	Duration    int               `json:"duration" db:"duration"`
	Difficulty  string            `json:"difficulty" db:"difficulty"`
	WorkoutType string            `json:"workout_type" db:"workout_type"`
	Exercises   []WorkoutExercise `json:"exercises" db:"exercises"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

type ExerciseResult struct {
	ExerciseName  string `json:"exercise_name" validate:"required"`
	SetsCompleted int    `json:"sets_completed"`
	RepsCompleted int    `json:"reps_completed"`
}

type CompleteWorkoutRequest struct {
	WorkoutID          string           `json:"workout_id" validate:"required,uuid4"`
	ExercisesCompleted []ExerciseResult `json:"exercises_completed" validate:"required,min=1,dive"`
	Notes              string           `json:"notes,omitempty"`
}
