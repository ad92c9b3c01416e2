package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	WeekStatusLocked    = "locked"
	WeekStatusUnlocked  = "unlocked"
	WeekStatusCompleted = "completed"
)

const PlanWeeks = 12

type WeeklyPlan struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     uuid.UUID   `json:"user_id" db:"user_id"`
	WeekNumber int         `json:"week_number" db:"week_number"`
	Workouts   []uuid.UUID `json:"workouts" db:"workouts"`
	Meals      []uuid.UUID `json:"meals" db:"meals"`
	Status     string      `json:"status" db:"status"`
	StartDate  time.Time   `json:"start_date" db:"start_date"`
	EndDate    time.Time   `json:"end_date" db:"end_date"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// WeekOverview is the trimmed shape used by the all-weeks listing.
type WeekOverview struct {
	WeekNumber int       `json:"week_number" db:"week_number"`
	Status     string    `json:"status" db:"status"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}

// ProgramWeek is one fully generated week before persistence: the plan
// row plus the workout and meal rows it references.
type ProgramWeek struct {
	Plan     WeeklyPlan
	Workouts []Workout
	Meals    []Meal
}

// Program is the complete 12-week generation result. It is assembled in
// memory and written in a single transaction so a stored plan is always
// complete.
type Program struct {
	UserID    uuid.UUID
	StartDate time.Time
	Weeks     []ProgramWeek
}
