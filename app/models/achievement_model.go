package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	BadgeID    string    `json:"badge_id" db:"badge_id"`
	BadgeType  string    `json:"badge_type" db:"badge_type"` // streak | milestone | week | workout | meal
	UnlockedAt time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// AchievementView joins an awarded achievement with its badge metadata.
type AchievementView struct {
	Achievement
	Name        string `json:"name"`
	Description string `json:"description"`
}
