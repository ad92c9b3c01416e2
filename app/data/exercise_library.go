package data

import "github.com/Adityas3111N/Streak-up-backend/app/models"

// ExerciseLibrary is the static exercise catalog, loaded at process
// start and read-only at runtime. Generators receive it (or a test
// double) as a parameter instead of reaching for it directly.
var ExerciseLibrary = []models.ExerciseDefinition{
	// beginner, no equipment
	{Name: "Wall Push-ups", Sets: 3, Reps: 10, Rest: 60, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"chest", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Assisted Squats", Sets: 3, Reps: 12, Rest: 60, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Knee Plank Hold", Sets: 3, Reps: 20, Rest: 45, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "flexibility"}},
	{Name: "Glute Bridge", Sets: 3, Reps: 12, Rest: 45, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"glutes", "legs"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "flexibility"}},
	{Name: "Marching in Place", Sets: 2, Reps: 30, Rest: 30, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"cardio"}, WorkoutType: "cardio", ImpactLevel: "low",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Standing Shoulder Press", Sets: 3, Reps: 10, Rest: 45, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"shoulders", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Seated Leg Raises", Sets: 3, Reps: 10, Rest: 45, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"legs", "core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "flexibility"}},
	{Name: "Cat-Cow Stretch", Sets: 2, Reps: 10, Rest: 30, Equipment: "none", Difficulty: "beginner",
		TargetMuscles: []string{"core", "back"}, WorkoutType: "flexibility", ImpactLevel: "low",
		Goals: []string{"flexibility"}},

	// beginner, home equipment
	{Name: "Resistance Band Rows", Sets: 3, Reps: 12, Rest: 60, Equipment: "home", Difficulty: "beginner",
		TargetMuscles: []string{"back", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},
	{Name: "Dumbbell Squats", Sets: 3, Reps: 12, Rest: 60, Equipment: "home", Difficulty: "beginner",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},
	{Name: "Dumbbell Bicep Curls", Sets: 3, Reps: 12, Rest: 45, Equipment: "home", Difficulty: "beginner",
		TargetMuscles: []string{"arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},

	// intermediate, no equipment
	{Name: "Push-ups", Sets: 3, Reps: 12, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"chest", "arms", "core"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Squats", Sets: 3, Reps: 15, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Plank Hold", Sets: 3, Reps: 45, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Lunges", Sets: 3, Reps: 12, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Burpees", Sets: 3, Reps: 10, Rest: 90, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"cardio", "full_body"}, WorkoutType: "cardio", ImpactLevel: "high",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Mountain Climbers", Sets: 3, Reps: 20, Rest: 45, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"cardio", "core"}, WorkoutType: "cardio", ImpactLevel: "medium",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Jumping Jacks", Sets: 3, Reps: 30, Rest: 30, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"cardio"}, WorkoutType: "cardio", ImpactLevel: "medium",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "High Knees", Sets: 3, Reps: 30, Rest: 30, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"cardio", "legs"}, WorkoutType: "cardio", ImpactLevel: "medium",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Bicycle Crunches", Sets: 3, Reps: 20, Rest: 45, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Russian Twists", Sets: 3, Reps: 20, Rest: 45, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Leg Raises", Sets: 3, Reps: 15, Rest: 45, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"core", "legs"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Pike Push-ups", Sets: 3, Reps: 10, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"shoulders", "arms"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength"}},
	{Name: "Diamond Push-ups", Sets: 3, Reps: 10, Rest: 60, Equipment: "none", Difficulty: "intermediate",
		TargetMuscles: []string{"chest", "arms", "triceps"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "muscle_gain"}},

	// intermediate, home equipment
	{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: 12, Rest: 60, Equipment: "home", Difficulty: "intermediate",
		TargetMuscles: []string{"shoulders", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},
	{Name: "Dumbbell Lunges", Sets: 3, Reps: 12, Rest: 60, Equipment: "home", Difficulty: "intermediate",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "muscle_gain"}},
	{Name: "Dumbbell Rows", Sets: 3, Reps: 12, Rest: 60, Equipment: "home", Difficulty: "intermediate",
		TargetMuscles: []string{"back", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},

	// advanced, no equipment
	{Name: "Push-ups", Sets: 4, Reps: 15, Rest: 45, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"chest", "arms", "core"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "weight_loss"}},
	{Name: "Jump Squats", Sets: 4, Reps: 15, Rest: 60, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"legs", "glutes", "cardio"}, WorkoutType: "mixed", ImpactLevel: "high",
		Goals: []string{"weight_loss", "strength", "endurance"}},
	{Name: "Plank Hold", Sets: 4, Reps: 60, Rest: 45, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"core"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength"}},
	{Name: "Burpees", Sets: 4, Reps: 15, Rest: 60, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"cardio", "full_body"}, WorkoutType: "cardio", ImpactLevel: "high",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Mountain Climbers", Sets: 4, Reps: 30, Rest: 30, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"cardio", "core"}, WorkoutType: "cardio", ImpactLevel: "medium",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Pike Push-ups", Sets: 4, Reps: 15, Rest: 45, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"shoulders", "arms"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength"}},
	{Name: "Single-leg Squats", Sets: 3, Reps: 10, Rest: 60, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "high",
		Goals: []string{"strength", "balance"}},
	{Name: "Hindu Push-ups", Sets: 3, Reps: 12, Rest: 60, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"chest", "shoulders", "back"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "flexibility"}},
	{Name: "Plank Jacks", Sets: 3, Reps: 20, Rest: 45, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"cardio", "core"}, WorkoutType: "cardio", ImpactLevel: "medium",
		Goals: []string{"weight_loss", "endurance"}},
	{Name: "Dips", Sets: 3, Reps: 12, Rest: 60, Equipment: "none", Difficulty: "advanced",
		TargetMuscles: []string{"arms", "triceps"}, WorkoutType: "strength", ImpactLevel: "medium",
		Goals: []string{"strength", "muscle_gain"}},

	// advanced, gym equipment
	{Name: "Pull-ups", Sets: 3, Reps: 10, Rest: 60, Equipment: "gym", Difficulty: "advanced",
		TargetMuscles: []string{"back", "arms"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},
	{Name: "Weighted Squats", Sets: 4, Reps: 15, Rest: 60, Equipment: "gym", Difficulty: "advanced",
		TargetMuscles: []string{"legs", "glutes"}, WorkoutType: "strength", ImpactLevel: "low",
		Goals: []string{"strength", "muscle_gain"}},
}

// ExerciseFilter narrows a catalog to entries compatible with a profile.
type ExerciseFilter struct {
	FitnessLevel string
	Equipment    string
	Injuries     []string
	WorkoutGoals []string
	ImpactLevel  string // optional exact override
}

// FilterExercises applies every predicate; all must hold for an entry
// to survive.
func FilterExercises(catalog []models.ExerciseDefinition, f ExerciseFilter) []models.ExerciseDefinition {
	var out []models.ExerciseDefinition
	for _, ex := range catalog {
		if ex.Difficulty != f.FitnessLevel {
			continue
		}
		// User with no equipment only gets bodyweight entries; home
		// excludes gym; gym accepts everything.
		if f.Equipment == "none" && ex.Equipment != "none" {
			continue
		}
		if f.Equipment == "home" && ex.Equipment == "gym" {
			continue
		}
		if len(f.Injuries) > 0 && ex.ImpactLevel == "high" {
			continue
		}
		if len(f.WorkoutGoals) > 0 && !sharesAny(f.WorkoutGoals, ex.Goals) {
			continue
		}
		if f.ImpactLevel != "" && ex.ImpactLevel != f.ImpactLevel {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func sharesAny(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// DefaultExercises is the RNG-free fallback used when filtering leaves
// nothing to choose from. Keyed only by target difficulty.
func DefaultExercises(difficulty string) []models.WorkoutExercise {
	switch difficulty {
	case "intermediate":
		return []models.WorkoutExercise{
			{Name: "Push-ups", Sets: 3, Reps: 12, Rest: 60},
			{Name: "Squats", Sets: 3, Reps: 15, Rest: 60},
			{Name: "Plank", Sets: 3, Reps: 45, Rest: 60},
			{Name: "Lunges", Sets: 3, Reps: 12, Rest: 60},
		}
	case "advanced":
		return []models.WorkoutExercise{
			{Name: "Push-ups", Sets: 4, Reps: 15, Rest: 45},
			{Name: "Squats", Sets: 4, Reps: 15, Rest: 45},
			{Name: "Plank", Sets: 4, Reps: 60, Rest: 45},
			{Name: "Burpees", Sets: 3, Reps: 12, Rest: 60},
			{Name: "Mountain Climbers", Sets: 3, Reps: 30, Rest: 30},
		}
	default:
		return []models.WorkoutExercise{
			{Name: "Push-ups", Sets: 2, Reps: 8, Rest: 60},
			{Name: "Squats", Sets: 2, Reps: 10, Rest: 60},
			{Name: "Plank", Sets: 2, Reps: 20, Rest: 45},
		}
	}
}
