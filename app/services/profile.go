package services

import (
	"strconv"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
)

// ExtractUserProfile normalizes free-form onboarding answers into a
// typed profile. It never fails: a missing answer, a type mismatch or
// an unparseable number falls back to the field's default so plan
// generation always has a complete profile to work with.
func ExtractUserProfile(answers []models.OnboardingAnswer) models.UserProfile {
	get := func(questionID string) (models.AnswerValue, bool) {
		for _, a := range answers {
			if a.QuestionID == questionID {
				return a.Answer, true
			}
		}
		return models.AnswerValue{}, false
	}

	getString := func(questionID, def string) string {
		if v, ok := get(questionID); ok && v.IsStr && v.Str != "" {
			return v.Str
		}
		return def
	}

	getList := func(questionID string) []string {
		if v, ok := get(questionID); ok && v.IsList {
			return v.List
		}
		return []string{}
	}

	getInt := func(questionID string, def int) int {
		v, ok := get(questionID)
		if !ok {
			return def
		}
		if v.IsNum {
			return int(v.Num)
		}
		if v.IsStr {
			if parsed, err := strconv.Atoi(v.Str); err == nil {
				return parsed
			}
		}
		return def
	}

	getWeight := func(questionID string) float64 {
		v, ok := get(questionID)
		if !ok {
			return 0
		}
		if v.IsNum {
			return v.Num
		}
		if v.IsStr {
			if parsed, err := strconv.ParseFloat(v.Str, 64); err == nil {
				return parsed
			}
		}
		return 0
	}

	return models.UserProfile{
		FitnessLevel:     getString("fitnessLevel", "beginner"),
		WorkoutFrequency: getInt("workoutFrequency", 3),
		WorkoutDuration:  getInt("workoutDuration", 20),
		WorkoutGoals:     getList("workoutGoals"),
		Equipment:        getString("equipment", "none"),
		Injuries:         getList("injuries"),

		ActivityLevel:     getString("activityLevel", "lightly_active"),
		ScheduleType:      getString("scheduleType", "flexible"),
		WorkoutPreference: getString("workoutPreference", "both"),

		DietaryRestrictions: getList("dietaryRestrictions"),
		MealPrepTime:        getString("mealPrepTime", "moderate"),
		CuisinePreferences:  getList("cuisinePreferences"),
		CookingSkill:        getString("cookingSkill", "intermediate"),

		Age:           getInt("age", 25),
		Gender:        getString("gender", "other"),
		CurrentWeight: getWeight("currentWeight"),
		TargetWeight:  getWeight("targetWeight"),
		PrimaryGoal:   getString("primaryGoal", "fitness"),
	}
}
