package queries

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type WorkoutQueries struct {
	DB *sql.DB
}

func scanWorkout(row interface{ Scan(...interface{}) error }) (models.Workout, error) {
	w := models.Workout{}
	var exercises []byte
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.WeekNumber, &w.Day, &w.Duration, &w.Difficulty, &w.WorkoutType, &exercises, &w.CreatedAt)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(exercises, &w.Exercises); err != nil {
		return w, errors.New("unable to decode workout exercises")
	}
	return w, nil
}

func (q *WorkoutQueries) GetWorkoutByID(id uuid.UUID) (models.Workout, error) {
	query := `SELECT id, user_id, name, week_number, day, duration, difficulty, workout_type, exercises, created_at
		FROM workouts WHERE id = $1`
	w, err := scanWorkout(q.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return w, sql.ErrNoRows
		}
		return w, errors.New("unable to get workout")
	}
	return w, nil
}

func (q *WorkoutQueries) GetWorkoutsForWeek(userID uuid.UUID, weekNumber int) ([]models.Workout, error) {
	query := `SELECT id, user_id, name, week_number, day, duration, difficulty, workout_type, exercises, created_at
		FROM workouts WHERE user_id = $1 AND week_number = $2 ORDER BY day`
	rows, err := q.DB.Query(query, userID, weekNumber)
	if err != nil {
		return nil, errors.New("unable to list workouts")
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, errors.New("unable to scan workout row")
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
