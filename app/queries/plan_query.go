package queries

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PlanQueries struct {
	DB *sql.DB
}

// CreateProgram writes all twelve generated weeks, their workouts and
// their meals in one transaction, then resets progress and moves the
// user's plan pointer to week one. Either the whole program lands or
// none of it does.
func (q *PlanQueries) CreateProgram(program *models.Program, goalDate *time.Time) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}
	defer tx.Rollback()

	workoutStmt := `INSERT INTO workouts (id, user_id, name, week_number, day, duration, difficulty, workout_type, exercises, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	mealStmt := `INSERT INTO meals (id, user_id, week_number, day, meal_type, instruction, examples, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	planStmt := `INSERT INTO weekly_plans (id, user_id, week_number, workouts, meals, status, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, week := range program.Weeks {
		for _, w := range week.Workouts {
			exercises, err := json.Marshal(w.Exercises)
			if err != nil {
				return errors.New("unable to encode workout exercises")
			}
			if _, err := tx.Exec(workoutStmt, w.ID, w.UserID, w.Name, w.WeekNumber, w.Day, w.Duration, w.Difficulty, w.WorkoutType, exercises, w.CreatedAt); err != nil {
				if isUniqueViolation(err) {
					return ErrDuplicate
				}
				return errors.New("unable to create workout, DB error")
			}
		}
		for _, m := range week.Meals {
			if _, err := tx.Exec(mealStmt, m.ID, m.UserID, m.WeekNumber, m.Day, m.MealType, m.Instruction, pq.Array(m.Examples), m.CreatedAt); err != nil {
				return errors.New("unable to create meal, DB error")
			}
		}

		p := week.Plan
		workoutIDs, err := json.Marshal(p.Workouts)
		if err != nil {
			return errors.New("unable to encode workout ids")
		}
		mealIDs, err := json.Marshal(p.Meals)
		if err != nil {
			return errors.New("unable to encode meal ids")
		}
		if _, err := tx.Exec(planStmt, p.ID, p.UserID, p.WeekNumber, workoutIDs, mealIDs, p.Status, p.StartDate, p.EndDate, p.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return errors.New("unable to create weekly plan, DB error")
		}
	}

	progressStmt := `INSERT INTO progress (user_id, current_streak, longest_streak, total_workouts_completed, total_meals_logged, weekly_completion_rate, last_active_date, updated_at)
		VALUES ($1, 0, 0, 0, 0, '{}', NULL, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = 0, longest_streak = 0,
			total_workouts_completed = 0, total_meals_logged = 0,
			weekly_completion_rate = '{}', last_active_date = NULL, updated_at = $2`
	if _, err := tx.Exec(progressStmt, program.UserID, time.Now()); err != nil {
		return errors.New("unable to reset progress, DB error")
	}

	userStmt := `UPDATE users SET current_week = 1, onboarding_completed = true, goal_date = $2, updated_at = $3 WHERE id = $1`
	if _, err := tx.Exec(userStmt, program.UserID, goalDate, time.Now()); err != nil {
		return errors.New("unable to update user plan state, DB error")
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit program, DB error")
	}
	return nil
}

func (q *PlanQueries) CountPlansByUser(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM weekly_plans WHERE user_id = $1`
	if err := q.DB.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, errors.New("unable to count weekly plans")
	}
	return count, nil
}

func (q *PlanQueries) GetWeeklyPlan(userID uuid.UUID, weekNumber int) (models.WeeklyPlan, error) {
	p := models.WeeklyPlan{}
	var workoutIDs, mealIDs []byte
	query := `SELECT id, user_id, week_number, workouts, meals, status, start_date, end_date, created_at
		FROM weekly_plans WHERE user_id = $1 AND week_number = $2`
	err := q.DB.QueryRow(query, userID, weekNumber).Scan(&p.ID, &p.UserID, &p.WeekNumber, &workoutIDs, &mealIDs, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, sql.ErrNoRows
		}
		return p, errors.New("unable to get weekly plan")
	}
	if err := json.Unmarshal(workoutIDs, &p.Workouts); err != nil {
		return p, errors.New("unable to decode workout ids")
	}
	if err := json.Unmarshal(mealIDs, &p.Meals); err != nil {
		return p, errors.New("unable to decode meal ids")
	}
	return p, nil
}

func (q *PlanQueries) GetAllWeeks(userID uuid.UUID) ([]models.WeekOverview, error) {
	query := `SELECT week_number, status, start_date, end_date FROM weekly_plans WHERE user_id = $1 ORDER BY week_number`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return nil, errors.New("unable to list weekly plans")
	}
	defer rows.Close()

	var weeks []models.WeekOverview
	for rows.Next() {
		w := models.WeekOverview{}
		if err := rows.Scan(&w.WeekNumber, &w.Status, &w.StartDate, &w.EndDate); err != nil {
			return nil, errors.New("unable to scan weekly plan row")
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (q *PlanQueries) UpdateWeekStatus(userID uuid.UUID, weekNumber int, status string) error {
	query := `UPDATE weekly_plans SET status = $3 WHERE user_id = $1 AND week_number = $2`
	res, err := q.DB.Exec(query, userID, weekNumber, status)
	if err != nil {
		return errors.New("unable to update week status, DB error")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeletePlanData removes every generated row for the user. Used when a
// plan is regenerated from scratch.
func (q *PlanQueries) DeletePlanData(userID uuid.UUID) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM workout_logs WHERE user_id = $1`,
		`DELETE FROM meal_logs WHERE user_id = $1`,
		`DELETE FROM weekly_plans WHERE user_id = $1`,
		`DELETE FROM workouts WHERE user_id = $1`,
		`DELETE FROM meals WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(stmt, userID); err != nil {
			return errors.New("unable to delete plan data, DB error")
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit plan deletion, DB error")
	}
	return nil
}
