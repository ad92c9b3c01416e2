package services

import (
	"math"

	"github.com/Adityas3111N/Streak-up-backend/app/data"
	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
)

// GenerateWorkout produces the exercise list for one session. The rng
// is owned by the surrounding plan-generation call, so for a fixed
// profile and call sequence the output is reproducible bit for bit.
func GenerateWorkout(catalog []models.ExerciseDefinition, profile models.UserProfile, weekNumber, day int, rng *utils.SeededRandom) []models.WorkoutExercise {
	targetDifficulty := TargetDifficulty(profile.FitnessLevel, weekNumber)

	goals := profile.WorkoutGoals
	if len(goals) == 0 {
		goals = []string{"strength"}
	}
	impactOverride := ""
	if len(profile.Injuries) > 0 {
		impactOverride = "low"
	}

	available := data.FilterExercises(catalog, data.ExerciseFilter{
		FitnessLevel: targetDifficulty,
		Equipment:    profile.Equipment,
		Injuries:     profile.Injuries,
		WorkoutGoals: goals,
		ImpactLevel:  impactOverride,
	})
	if len(available) == 0 {
		return data.DefaultExercises(targetDifficulty)
	}

	workoutType := workoutTypeFor(profile, weekNumber, day)

	var typeFiltered []models.ExerciseDefinition
	for _, ex := range available {
		if workoutType == "cardio" && ex.WorkoutType != "cardio" && ex.WorkoutType != "mixed" {
			continue
		}
		if workoutType == "strength" && ex.WorkoutType != "strength" && ex.WorkoutType != "mixed" {
			continue
		}
		typeFiltered = append(typeFiltered, ex)
	}
	if len(typeFiltered) == 0 {
		typeFiltered = available
	}

	selected := selectVariedExercises(typeFiltered, weekNumber, rng)

	return adjustIntensity(selected, weekNumber, targetDifficulty)
}

// workoutTypeFor biases the session type toward the user's goals:
// weight loss leans cardio, strength/muscle gain leans strength,
// otherwise the week band decides.
func workoutTypeFor(profile models.UserProfile, weekNumber, day int) string {
	if contains(profile.WorkoutGoals, "weight_loss") {
		rotation := []string{"cardio", "mixed", "strength", "cardio", "mixed"}
		return rotation[(day-1)%len(rotation)]
	}
	if contains(profile.WorkoutGoals, "strength") || contains(profile.WorkoutGoals, "muscle_gain") {
		rotation := []string{"strength", "mixed", "strength", "strength", "mixed"}
		return rotation[(day-1)%len(rotation)]
	}
	return WeekWorkoutType(weekNumber)
}

// selectVariedExercises picks N from a shuffled candidate list,
// preferring exercises that introduce an unused target-muscle tag. The
// first two picks are unconditional to seed muscle-group diversity;
// remaining slots are padded from the shuffled leftovers if variety
// exhausts the list early.
func selectVariedExercises(exercises []models.ExerciseDefinition, weekNumber int, rng *utils.SeededRandom) []models.ExerciseDefinition {
	numExercises := 5
	if weekNumber <= 2 {
		numExercises = 3
	} else if weekNumber <= 5 {
		numExercises = 4
	}

	shuffled := utils.Shuffle(rng, exercises)

	var selected []models.ExerciseDefinition
	picked := make([]bool, len(shuffled))
	usedMuscles := map[string]bool{}

	for i, ex := range shuffled {
		if len(selected) >= numExercises {
			break
		}
		hasNewMuscle := false
		for _, m := range ex.TargetMuscles {
			if !usedMuscles[m] {
				hasNewMuscle = true
				break
			}
		}
		if hasNewMuscle || len(selected) < 2 {
			selected = append(selected, ex)
			picked[i] = true
			for _, m := range ex.TargetMuscles {
				usedMuscles[m] = true
			}
		}
	}

	for i := 0; len(selected) < numExercises && i < len(shuffled); i++ {
		if !picked[i] {
			selected = append(selected, shuffled[i])
			picked[i] = true
		}
	}

	if len(selected) > numExercises {
		selected = selected[:numExercises]
	}
	return selected
}

// adjustIntensity applies progressive overload: sets and reps grow and
// rest shrinks linearly from week 1 (p=0) to week 12 (p=1), scaled by
// the target difficulty.
func adjustIntensity(exercises []models.ExerciseDefinition, weekNumber int, difficulty string) []models.WorkoutExercise {
	p := float64(weekNumber-1) / 11

	out := make([]models.WorkoutExercise, 0, len(exercises))
	for _, ex := range exercises {
		var sets, reps, rest int
		switch difficulty {
		case "intermediate":
			sets = int(math.Floor(float64(ex.Sets) * (1 + p*0.15)))
			reps = int(math.Floor(float64(ex.Reps) * (1 + p*0.2)))
			rest = atLeast(30, int(math.Floor(float64(ex.Rest)*(1-p*0.15))))
		case "advanced":
			sets = int(math.Floor(float64(ex.Sets) * (1 + p*0.1)))
			reps = int(math.Floor(float64(ex.Reps) * (1 + p*0.15)))
			rest = atLeast(30, int(math.Floor(float64(ex.Rest)*(1-p*0.1))))
		default:
			sets = atLeast(2, int(math.Floor(float64(ex.Sets)*(1+p*0.2))))
			reps = atLeast(5, int(math.Floor(float64(ex.Reps)*(1+p*0.3))))
			rest = atLeast(30, int(math.Floor(float64(ex.Rest)*(1-p*0.2))))
		}
		out = append(out, models.WorkoutExercise{Name: ex.Name, Sets: sets, Reps: reps, Rest: rest})
	}
	return out
}

func atLeast(min, v int) int {
	if v < min {
		return min
	}
	return v
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
