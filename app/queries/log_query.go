package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
)

type LogQueries struct {
	DB *sql.DB
}

func (q *LogQueries) CreateWorkoutLog(log *models.WorkoutLog) error {
	exercises, err := json.Marshal(log.ExercisesCompleted)
	if err != nil {
		return errors.New("unable to encode exercise results")
	}
	query := `INSERT INTO workout_logs (id, user_id, workout_id, exercises_completed, notes, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := q.DB.Exec(query, log.ID, log.UserID, log.WorkoutID, exercises, log.Notes, log.CompletedAt); err != nil {
		return errors.New("unable to create workout log, DB error")
	}
	return nil
}

func (q *LogQueries) CreateMealLog(log *models.MealLog) error {
	query := `INSERT INTO meal_logs (id, user_id, meal_id, skipped, completed_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := q.DB.Exec(query, log.ID, log.UserID, log.MealID, log.Skipped, log.CompletedAt); err != nil {
		return errors.New("unable to create meal log, DB error")
	}
	return nil
}

// CountCompletedWorkoutsForWeek counts distinct workouts of the given
// week that have at least one completion log, so re-completing a
// session never inflates the week percentage.
func (q *LogQueries) CountCompletedWorkoutsForWeek(userID uuid.UUID, weekNumber int) (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT wl.workout_id) FROM workout_logs wl
		JOIN workouts w ON w.id = wl.workout_id
		WHERE wl.user_id = $1 AND w.week_number = $2`
	if err := q.DB.QueryRow(query, userID, weekNumber).Scan(&count); err != nil {
		return 0, errors.New("unable to count completed workouts")
	}
	return count, nil
}

// CountLoggedMealsForWeek counts distinct non-skipped meal logs for the
// week. Skipped meals never contribute toward completion.
func (q *LogQueries) CountLoggedMealsForWeek(userID uuid.UUID, weekNumber int) (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT ml.meal_id) FROM meal_logs ml
		JOIN meals m ON m.id = ml.meal_id
		WHERE ml.user_id = $1 AND m.week_number = $2 AND ml.skipped = false`
	if err := q.DB.QueryRow(query, userID, weekNumber).Scan(&count); err != nil {
		return 0, errors.New("unable to count logged meals")
	}
	return count, nil
}

// GetActivityTimestamps returns every activity-bearing timestamp for the
// user: workout completions plus non-skipped meal logs, newest first.
func (q *LogQueries) GetActivityTimestamps(userID uuid.UUID) ([]time.Time, error) {
	query := `SELECT completed_at FROM workout_logs WHERE user_id = $1
		UNION ALL
		SELECT completed_at FROM meal_logs WHERE user_id = $1 AND skipped = false
		ORDER BY completed_at DESC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return nil, errors.New("unable to list activity timestamps")
	}
	defer rows.Close()

	var stamps []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, errors.New("unable to scan activity timestamp")
		}
		stamps = append(stamps, t)
	}
	return stamps, rows.Err()
}

// ActivityEvent is one scored calendar event for the activity grid.
type ActivityEvent struct {
	At     time.Time
	Points int
}

// GetActivityEventsBetween returns scored events inside [from, to):
// workouts are worth two points, non-skipped meals one.
func (q *LogQueries) GetActivityEventsBetween(userID uuid.UUID, from, to time.Time) ([]ActivityEvent, error) {
	query := `SELECT completed_at, 2 AS points FROM workout_logs WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3
		UNION ALL
		SELECT completed_at, 1 AS points FROM meal_logs WHERE user_id = $1 AND skipped = false AND completed_at >= $2 AND completed_at < $3`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return nil, errors.New("unable to list activity events")
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		e := ActivityEvent{}
		if err := rows.Scan(&e.At, &e.Points); err != nil {
			return nil, errors.New("unable to scan activity event")
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountWorkoutLogsPerWeek maps plan week number to distinct completed
// workouts in it.
func (q *LogQueries) CountWorkoutLogsPerWeek(userID uuid.UUID) (map[int]int, error) {
	query := `SELECT w.week_number, COUNT(DISTINCT wl.workout_id) FROM workout_logs wl
		JOIN workouts w ON w.id = wl.workout_id
		WHERE wl.user_id = $1 GROUP BY w.week_number`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return nil, errors.New("unable to count workouts per week")
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var week, n int
		if err := rows.Scan(&week, &n); err != nil {
			return nil, errors.New("unable to scan per-week count")
		}
		counts[week] = n
	}
	return counts, rows.Err()
}

func (q *LogQueries) CountWorkoutLogs(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM workout_logs WHERE user_id = $1`
	if err := q.DB.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, errors.New("unable to count workout logs")
	}
	return count, nil
}

// CountMealLogs returns logged (non-skipped) and skipped totals.
func (q *LogQueries) CountMealLogs(userID uuid.UUID) (logged, skipped int, err error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE skipped = false),
		COUNT(*) FILTER (WHERE skipped = true)
		FROM meal_logs WHERE user_id = $1`
	if err := q.DB.QueryRow(query, userID).Scan(&logged, &skipped); err != nil {
		return 0, 0, errors.New("unable to count meal logs")
	}
	return logged, skipped, nil
}

func (q *LogQueries) GetWorkoutHistory(userID uuid.UUID, limit int) ([]models.WorkoutLog, error) {
	query := `SELECT id, user_id, workout_id, exercises_completed, notes, completed_at
		FROM workout_logs WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2`
	rows, err := q.DB.Query(query, userID, limit)
	if err != nil {
		return nil, errors.New("unable to list workout logs")
	}
	defer rows.Close()

	var logs []models.WorkoutLog
	for rows.Next() {
		l := models.WorkoutLog{}
		var exercises []byte
		if err := rows.Scan(&l.ID, &l.UserID, &l.WorkoutID, &exercises, &l.Notes, &l.CompletedAt); err != nil {
			return nil, errors.New("unable to scan workout log row")
		}
		if err := json.Unmarshal(exercises, &l.ExercisesCompleted); err != nil {
			return nil, errors.New("unable to decode exercise results")
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (q *LogQueries) GetMealHistory(userID uuid.UUID, limit int) ([]models.MealLog, error) {
	query := `SELECT id, user_id, meal_id, skipped, completed_at
		FROM meal_logs WHERE user_id = $1 ORDER BY completed_at DESC LIMIT $2`
	rows, err := q.DB.Query(query, userID, limit)
	if err != nil {
		return nil, errors.New("unable to list meal logs")
	}
	defer rows.Close()

	var logs []models.MealLog
	for rows.Next() {
		l := models.MealLog{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.MealID, &l.Skipped, &l.CompletedAt); err != nil {
			return nil, errors.New("unable to scan meal log row")
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
