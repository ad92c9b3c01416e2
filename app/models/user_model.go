package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID  `json:"id" db:"uid"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	CurrentWeek         int        `json:"current_week" db:"current_week"`
	OnboardingCompleted bool       `json:"onboarding_completed" db:"onboarding_completed"`
	GoalDate            *time.Time `json:"goal_date,omitempty" db:"goal_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
