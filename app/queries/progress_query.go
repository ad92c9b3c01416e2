package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type ProgressQueries struct {
	DB *sql.DB
}

// GetOrCreateProgress returns the user's progress row, inserting a zeroed
// one if the user has never recorded activity.
func (q *ProgressQueries) GetOrCreateProgress(userID uuid.UUID) (models.Progress, error) {
	p := models.Progress{UserID: userID, WeeklyCompletionRate: map[int]int{}}
	var rates []byte
	var lastActive sql.NullTime
	query := `SELECT user_id, current_streak, longest_streak, total_workouts_completed, total_meals_logged, weekly_completion_rate, last_active_date, updated_at
		FROM progress WHERE user_id = $1`
	err := q.DB.QueryRow(query, userID).Scan(&p.UserID, &p.CurrentStreak, &p.LongestStreak, &p.TotalWorkoutsCompleted, &p.TotalMealsLogged, &rates, &lastActive, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		insert := `INSERT INTO progress (user_id, current_streak, longest_streak, total_workouts_completed, total_meals_logged, weekly_completion_rate, last_active_date, updated_at)
			VALUES ($1, 0, 0, 0, 0, '{}', NULL, $2)
			ON CONFLICT (user_id) DO NOTHING`
		if _, err := q.DB.Exec(insert, userID, time.Now()); err != nil {
			return p, errors.New("unable to create progress record, DB error")
		}
		p.UpdatedAt = time.Now()
		return p, nil
	}
	if err != nil {
		return p, errors.New("unable to get progress record")
	}
	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &p.WeeklyCompletionRate); err != nil {
			return p, errors.New("unable to decode weekly completion rates")
		}
	}
	if p.WeeklyCompletionRate == nil {
		p.WeeklyCompletionRate = map[int]int{}
	}
	if lastActive.Valid {
		p.LastActiveDate = lastActive.Time
	}
	return p, nil
}

func (q *ProgressQueries) SaveProgress(p *models.Progress) error {
	rates, err := json.Marshal(p.WeeklyCompletionRate)
	if err != nil {
		return errors.New("unable to encode weekly completion rates")
	}
	var lastActive interface{}
	if !p.LastActiveDate.IsZero() {
		lastActive = p.LastActiveDate
	}
	query := `INSERT INTO progress (user_id, current_streak, longest_streak, total_workouts_completed, total_meals_logged, weekly_completion_rate, last_active_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = $2, longest_streak = $3,
			total_workouts_completed = $4, total_meals_logged = $5,
			weekly_completion_rate = $6, last_active_date = $7, updated_at = $8`
	if _, err := q.DB.Exec(query, p.UserID, p.CurrentStreak, p.LongestStreak, p.TotalWorkoutsCompleted, p.TotalMealsLogged, rates, lastActive, time.Now()); err != nil {
		return errors.New("unable to save progress record, DB error")
	}
	return nil
}
