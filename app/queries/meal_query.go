package queries

import (
	"database/sql"
	"errors"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MealQueries struct {
	DB *sql.DB
}

func (q *MealQueries) GetMealByID(id uuid.UUID) (models.Meal, error) {
	m := models.Meal{}
	query := `SELECT id, user_id, week_number, day, meal_type, instruction, examples, created_at
		FROM meals WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(&m.ID, &m.UserID, &m.WeekNumber, &m.Day, &m.MealType, &m.Instruction, pq.Array(&m.Examples), &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return m, sql.ErrNoRows
		}
		return m, errors.New("unable to get meal")
	}
	return m, nil
}

func (q *MealQueries) GetMealsForWeek(userID uuid.UUID, weekNumber int) ([]models.Meal, error) {
	query := `SELECT id, user_id, week_number, day, meal_type, instruction, examples, created_at
		FROM meals WHERE user_id = $1 AND week_number = $2
		ORDER BY day, CASE meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 WHEN 'dinner' THEN 3 ELSE 4 END`
	return q.listMeals(query, userID, weekNumber)
}

func (q *MealQueries) GetMealsForDay(userID uuid.UUID, weekNumber, day int) ([]models.Meal, error) {
	query := `SELECT id, user_id, week_number, day, meal_type, instruction, examples, created_at
		FROM meals WHERE user_id = $1 AND week_number = $2 AND day = $3
		ORDER BY CASE meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 WHEN 'dinner' THEN 3 ELSE 4 END`
	return q.listMeals(query, userID, weekNumber, day)
}

func (q *MealQueries) listMeals(query string, args ...interface{}) ([]models.Meal, error) {
	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return nil, errors.New("unable to list meals")
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		m := models.Meal{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.WeekNumber, &m.Day, &m.MealType, &m.Instruction, pq.Array(&m.Examples), &m.CreatedAt); err != nil {
			return nil, errors.New("unable to scan meal row")
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}
