package models

// UserProfile is the normalized view of a user's onboarding answers.
// Built once by services.ExtractUserProfile and treated as immutable
// for the duration of plan generation.
type UserProfile struct {
	// Fitness
	FitnessLevel     string   `json:"fitness_level"`     // beginner | intermediate | advanced
	WorkoutFrequency int      `json:"workout_frequency"` // 3, 4 or 5 per week
	WorkoutDuration  int      `json:"workout_duration"`  // preferred minutes
	WorkoutGoals     []string `json:"workout_goals"`     // weight_loss, strength, endurance, flexibility, muscle_gain
	Equipment        string   `json:"equipment"`         // none | home | gym
	Injuries         []string `json:"injuries"`

	// Lifestyle
	ActivityLevel     string `json:"activity_level"`
	ScheduleType      string `json:"schedule_type"`
	WorkoutPreference string `json:"workout_preference"`

	// Nutrition
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MealPrepTime        string   `json:"meal_prep_time"` // quick | moderate | elaborate
	CuisinePreferences  []string `json:"cuisine_preferences"`
	CookingSkill        string   `json:"cooking_skill"` // beginner | intermediate | advanced

	// Personal
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	CurrentWeight float64 `json:"current_weight,omitempty"`
	TargetWeight  float64 `json:"target_weight,omitempty"`
	PrimaryGoal   string  `json:"primary_goal"`
}
