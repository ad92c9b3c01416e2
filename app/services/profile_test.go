package services

import (
	"testing"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
)

func strAnswer(questionID, value string) models.OnboardingAnswer {
	return models.OnboardingAnswer{QuestionID: questionID, Answer: models.AnswerValue{Str: value, IsStr: true}}
}

func numAnswer(questionID string, value float64) models.OnboardingAnswer {
	return models.OnboardingAnswer{QuestionID: questionID, Answer: models.AnswerValue{Num: value, IsNum: true}}
}

func listAnswer(questionID string, values ...string) models.OnboardingAnswer {
	return models.OnboardingAnswer{QuestionID: questionID, Answer: models.AnswerValue{List: values, IsList: true}}
}

func TestExtractUserProfileDefaults(t *testing.T) {
	p := ExtractUserProfile(nil)

	if p.FitnessLevel != "beginner" {
		t.Errorf("FitnessLevel = %q, want beginner", p.FitnessLevel)
	}
	if p.WorkoutFrequency != 3 {
		t.Errorf("WorkoutFrequency = %d, want 3", p.WorkoutFrequency)
	}
	if p.WorkoutDuration != 20 {
		t.Errorf("WorkoutDuration = %d, want 20", p.WorkoutDuration)
	}
	if p.Equipment != "none" {
		t.Errorf("Equipment = %q, want none", p.Equipment)
	}
	if p.MealPrepTime != "moderate" {
		t.Errorf("MealPrepTime = %q, want moderate", p.MealPrepTime)
	}
	if p.CookingSkill != "intermediate" {
		t.Errorf("CookingSkill = %q, want intermediate", p.CookingSkill)
	}
	if p.Age != 25 {
		t.Errorf("Age = %d, want 25", p.Age)
	}
	if p.PrimaryGoal != "fitness" {
		t.Errorf("PrimaryGoal = %q, want fitness", p.PrimaryGoal)
	}
	if len(p.WorkoutGoals) != 0 || len(p.Injuries) != 0 || len(p.DietaryRestrictions) != 0 {
		t.Error("list fields should default to empty")
	}
}

func TestExtractUserProfileTypedAnswers(t *testing.T) {
	answers := []models.OnboardingAnswer{
		strAnswer("fitnessLevel", "advanced"),
		numAnswer("workoutFrequency", 5),
		listAnswer("workoutGoals", "strength", "muscle_gain"),
		strAnswer("equipment", "gym"),
		listAnswer("dietaryRestrictions", "vegetarian"),
		numAnswer("currentWeight", 82.5),
		strAnswer("targetWeight", "75"),
	}

	p := ExtractUserProfile(answers)

	if p.FitnessLevel != "advanced" {
		t.Errorf("FitnessLevel = %q", p.FitnessLevel)
	}
	if p.WorkoutFrequency != 5 {
		t.Errorf("WorkoutFrequency = %d", p.WorkoutFrequency)
	}
	if len(p.WorkoutGoals) != 2 || p.WorkoutGoals[0] != "strength" {
		t.Errorf("WorkoutGoals = %v", p.WorkoutGoals)
	}
	if p.Equipment != "gym" {
		t.Errorf("Equipment = %q", p.Equipment)
	}
	if len(p.DietaryRestrictions) != 1 || p.DietaryRestrictions[0] != "vegetarian" {
		t.Errorf("DietaryRestrictions = %v", p.DietaryRestrictions)
	}
	if p.CurrentWeight != 82.5 {
		t.Errorf("CurrentWeight = %v", p.CurrentWeight)
	}
	if p.TargetWeight != 75 {
		t.Errorf("TargetWeight = %v, string numbers must parse", p.TargetWeight)
	}
}

func TestExtractUserProfileMismatchedTypes(t *testing.T) {
	answers := []models.OnboardingAnswer{
		// frequency given as an unparseable string
		strAnswer("workoutFrequency", "sometimes"),
		// fitness level given as a number
		numAnswer("fitnessLevel", 3),
		// numeric frequency carried as digits in a string
		strAnswer("workoutDuration", "45"),
	}

	p := ExtractUserProfile(answers)

	if p.WorkoutFrequency != 3 {
		t.Errorf("unparseable frequency: got %d, want default 3", p.WorkoutFrequency)
	}
	if p.FitnessLevel != "beginner" {
		t.Errorf("numeric fitness level: got %q, want default beginner", p.FitnessLevel)
	}
	if p.WorkoutDuration != 45 {
		t.Errorf("digit string duration: got %d, want 45", p.WorkoutDuration)
	}
}
