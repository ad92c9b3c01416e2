package queries

import (
	"database/sql"
	"errors"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type AchievementQueries struct {
	DB *sql.DB
}

func (q *AchievementQueries) CreateAchievement(a *models.Achievement) error {
	query := `INSERT INTO achievements (id, user_id, badge_id, badge_type, unlocked_at)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id, badge_id) DO NOTHING`
	if _, err := q.DB.Exec(query, a.ID, a.UserID, a.BadgeID, a.BadgeType, a.UnlockedAt); err != nil {
		return errors.New("unable to create achievement, DB error")
	}
	return nil
}

func (q *AchievementQueries) GetAchievementsByUser(userID uuid.UUID) ([]models.Achievement, error) {
	query := `SELECT id, user_id, badge_id, badge_type, unlocked_at FROM achievements WHERE user_id = $1 ORDER BY unlocked_at`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return nil, errors.New("unable to list achievements")
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		a := models.Achievement{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.BadgeID, &a.BadgeType, &a.UnlockedAt); err != nil {
			return nil, errors.New("unable to scan achievement row")
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (q *AchievementQueries) CountCompletedWeeks(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM weekly_plans WHERE user_id = $1 AND status = $2`
	if err := q.DB.QueryRow(query, userID, models.WeekStatusCompleted).Scan(&count); err != nil {
		return 0, errors.New("unable to count completed weeks")
	}
	return count, nil
}

func (q *AchievementQueries) HasBadge(userID uuid.UUID, badgeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM achievements WHERE user_id = $1 AND badge_id = $2)`
	if err := q.DB.QueryRow(query, userID, badgeID).Scan(&exists); err != nil {
		return false, errors.New("unable to check badge")
	}
	return exists, nil
}
