package queries

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type OnboardingQueries struct {
	DB *sql.DB
}

func (q *OnboardingQueries) CreateOnboarding(o *models.Onboarding) error {
	answers, err := json.Marshal(o.Answers)
	if err != nil {
		return errors.New("unable to encode onboarding answers")
	}
	query := `INSERT INTO onboarding (id, user_id, answers, goal_date, completed_at) VALUES ($1, $2, $3, $4, $5)`
	_, err = q.DB.Exec(query, o.ID, o.UserID, answers, o.GoalDate, o.CompletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return errors.New("unable to create onboarding record, DB error")
	}
	return nil
}

func (q *OnboardingQueries) GetOnboardingByUser(userID uuid.UUID) (models.Onboarding, error) {
	o := models.Onboarding{}
	var answers []byte
	query := `SELECT id, user_id, answers, goal_date, completed_at FROM onboarding WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&o.ID, &o.UserID, &answers, &o.GoalDate, &o.CompletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return o, sql.ErrNoRows
		}
		return o, errors.New("unable to get onboarding record")
	}
	if err := json.Unmarshal(answers, &o.Answers); err != nil {
		return o, errors.New("unable to decode onboarding answers")
	}
	return o, nil
}
