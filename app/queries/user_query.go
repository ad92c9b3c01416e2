package queries

import (
	"database/sql"
	"errors"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type UserQueries struct {
	DB *sql.DB
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	user := models.User{}
	query := `SELECT id, username, email, current_week, onboarding_completed, goal_date, created_at, updated_at
		FROM users WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Email, &user.CurrentWeek, &user.OnboardingCompleted, &user.GoalDate, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return user, sql.ErrNoRows
		}
		return user, errors.New("unable to get user")
	}
	return user, nil
}

func (q *UserQueries) UpdateCurrentWeek(id uuid.UUID, weekNumber int) error {
	query := `UPDATE users SET current_week = $2, updated_at = NOW() WHERE id = $1`
	res, err := q.DB.Exec(query, id, weekNumber)
	if err != nil {
		return errors.New("unable to update current week, DB error")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
