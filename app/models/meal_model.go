package models

import (
	"time"

	"github.com/google/uuid"
)

type Macros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

// MealDefinition is a static catalog entry (a meal template, not a row
// tied to any user).
type MealDefinition struct {
	MealType    string   `json:"meal_type"` // breakfast | lunch | dinner | snack
	Instruction string   `json:"instruction"`
	Examples    []string `json:"examples"`
	DietaryTags []string `json:"dietary_tags"` // vegetarian, vegan, gluten_free, dairy_free, keto, paleo
	CuisineType []string `json:"cuisine_type"` // mediterranean, asian, mexican, american, indian
	PrepTime    string   `json:"prep_time"`    // quick | moderate | elaborate
	Difficulty  string   `json:"difficulty"`   // beginner | intermediate | advanced
	Calories    int      `json:"calories"`
	Macros      Macros   `json:"macros"`
}

type Meal struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	WeekNumber  int       `json:"week_number" db:"week_number"`
	Day         int       `json:"day" db:"day"` // 1..7
	MealType    string    `json:"meal_type" db:"meal_type"`
	Instruction string    `json:"instruction" db:"instruction"`
	Examples    []string  `json:"examples" db:"examples"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type LogMealRequest struct {
	MealID  string `json:"meal_id" validate:"required,uuid4"`
	Skipped bool   `json:"skipped"`
}
