package services

import (
	"reflect"
	"testing"

	"github.com/Adityas3111N/Streak-up-backend/app/data"
	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
)

func beginnerProfile() models.UserProfile {
	return models.UserProfile{
		FitnessLevel:     "beginner",
		WorkoutFrequency: 3,
		Equipment:        "none",
	}
}

func TestGenerateWorkoutDeterminism(t *testing.T) {
	profile := beginnerProfile()

	a := GenerateWorkout(data.ExerciseLibrary, profile, 3, 1, utils.NewSeededRandom(4242))
	b := GenerateWorkout(data.ExerciseLibrary, profile, 3, 1, utils.NewSeededRandom(4242))

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different workouts:\n%v\n%v", a, b)
	}
}

func TestGenerateWorkoutCountRampsWithWeek(t *testing.T) {
	profile := beginnerProfile()
	tests := []struct {
		week, want int
	}{
		{1, 3}, {2, 3},
		{3, 4}, {5, 4},
		{6, 5}, {12, 5},
	}
	for _, tt := range tests {
		got := GenerateWorkout(data.ExerciseLibrary, profile, tt.week, 1, utils.NewSeededRandom(1))
		if len(got) != tt.want {
			t.Errorf("week %d: %d exercises, want %d", tt.week, len(got), tt.want)
		}
	}
}

func TestGenerateWorkoutInjuryAvoidsHighImpact(t *testing.T) {
	// Names can repeat across difficulties, so collect every impact
	// level a name appears with.
	impacts := map[string][]string{}
	for _, ex := range data.ExerciseLibrary {
		impacts[ex.Name] = append(impacts[ex.Name], ex.ImpactLevel)
	}

	profile := models.UserProfile{
		FitnessLevel:     "intermediate",
		WorkoutFrequency: 3,
		Equipment:        "home",
		Injuries:         []string{"knee"},
		WorkoutGoals:     []string{"strength"},
	}

	for week := 1; week <= 12; week++ {
		got := GenerateWorkout(data.ExerciseLibrary, profile, week, 1, utils.NewSeededRandom(int64(week)))
		if len(got) == 0 {
			t.Fatalf("week %d: empty workout", week)
		}
		for _, we := range got {
			levels, ok := impacts[we.Name]
			if !ok {
				// fallback entries carry no impact metadata
				continue
			}
			hasLow := false
			for _, l := range levels {
				if l == "low" {
					hasLow = true
				}
			}
			if !hasLow {
				t.Fatalf("week %d: injured user got %q with impacts %v", week, we.Name, levels)
			}
		}
	}
}

func TestGenerateWorkoutDifficultyRamp(t *testing.T) {
	difficulties := map[string][]string{}
	for _, ex := range data.ExerciseLibrary {
		difficulties[ex.Name] = append(difficulties[ex.Name], ex.Difficulty)
	}

	profile := models.UserProfile{
		FitnessLevel:     "advanced",
		WorkoutFrequency: 3,
		Equipment:        "gym",
		WorkoutGoals:     []string{"strength"},
	}

	for _, tc := range []struct {
		name string
		week int
		want string
	}{
		{"week 1", 1, "beginner"},
		{"week 3", 3, "intermediate"},
		{"week 6", 6, "advanced"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := GenerateWorkout(data.ExerciseLibrary, profile, tc.week, 1, utils.NewSeededRandom(7))
			for _, we := range got {
				levels, ok := difficulties[we.Name]
				if !ok {
					continue
				}
				found := false
				for _, l := range levels {
					if l == tc.want {
						found = true
					}
				}
				if !found {
					t.Fatalf("%s: exercise %q exists only at %v, want %q", tc.name, we.Name, levels, tc.want)
				}
			}
		})
	}
}

func TestAdjustIntensityProgressiveOverload(t *testing.T) {
	base := []models.ExerciseDefinition{
		{Name: "Push-ups", Sets: 3, Reps: 12, Rest: 60},
	}

	week1 := adjustIntensity(base, 1, "intermediate")[0]
	week12 := adjustIntensity(base, 12, "intermediate")[0]

	if week1.Sets != 3 || week1.Reps != 12 || week1.Rest != 60 {
		t.Fatalf("week 1 must keep base values, got %+v", week1)
	}
	if week12.Sets < week1.Sets || week12.Reps <= week1.Reps {
		t.Fatalf("no overload by week 12: %+v vs %+v", week1, week12)
	}
	if week12.Rest >= week1.Rest {
		t.Fatalf("rest must shrink: %d vs %d", week1.Rest, week12.Rest)
	}
	if week12.Rest < 30 {
		t.Fatalf("rest floor violated: %d", week12.Rest)
	}
}

func TestAdjustIntensityBeginnerFloors(t *testing.T) {
	base := []models.ExerciseDefinition{
		{Name: "Tiny", Sets: 1, Reps: 3, Rest: 20},
	}
	got := adjustIntensity(base, 1, "beginner")[0]
	if got.Sets < 2 {
		t.Errorf("Sets = %d, want at least 2", got.Sets)
	}
	if got.Reps < 5 {
		t.Errorf("Reps = %d, want at least 5", got.Reps)
	}
	if got.Rest < 30 {
		t.Errorf("Rest = %d, want at least 30", got.Rest)
	}
}

func TestWorkoutTypeRotationByGoal(t *testing.T) {
	weightLoss := models.UserProfile{WorkoutGoals: []string{"weight_loss"}}
	strength := models.UserProfile{WorkoutGoals: []string{"muscle_gain"}}

	if got := workoutTypeFor(weightLoss, 1, 1); got != "cardio" {
		t.Errorf("weight_loss day 1 = %q, want cardio", got)
	}
	if got := workoutTypeFor(weightLoss, 1, 6); got != "cardio" {
		t.Errorf("weight_loss day 6 wraps to %q, want cardio", got)
	}
	if got := workoutTypeFor(strength, 1, 1); got != "strength" {
		t.Errorf("muscle_gain day 1 = %q, want strength", got)
	}
	if got := workoutTypeFor(models.UserProfile{}, 6, 1); got != "strength" {
		t.Errorf("no goals week 6 = %q, want week label strength", got)
	}
}
