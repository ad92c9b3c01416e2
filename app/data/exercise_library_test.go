package data

import "testing"

func TestFilterExercisesEquipment(t *testing.T) {
	got := FilterExercises(ExerciseLibrary, ExerciseFilter{
		FitnessLevel: "beginner",
		Equipment:    "none",
	})
	if len(got) == 0 {
		t.Fatal("expected beginner bodyweight exercises")
	}
	for _, ex := range got {
		if ex.Equipment != "none" {
			t.Fatalf("%q requires equipment %q", ex.Name, ex.Equipment)
		}
		if ex.Difficulty != "beginner" {
			t.Fatalf("%q has difficulty %q", ex.Name, ex.Difficulty)
		}
	}

	home := FilterExercises(ExerciseLibrary, ExerciseFilter{
		FitnessLevel: "intermediate",
		Equipment:    "home",
	})
	for _, ex := range home {
		if ex.Equipment == "gym" {
			t.Fatalf("home filter let gym exercise %q through", ex.Name)
		}
	}
}

func TestFilterExercisesInjuries(t *testing.T) {
	got := FilterExercises(ExerciseLibrary, ExerciseFilter{
		FitnessLevel: "intermediate",
		Equipment:    "none",
		Injuries:     []string{"knee"},
	})
	if len(got) == 0 {
		t.Fatal("expected low and medium impact exercises to survive")
	}
	for _, ex := range got {
		if ex.ImpactLevel == "high" {
			t.Fatalf("injury filter let high-impact exercise %q through", ex.Name)
		}
	}
}

func TestFilterExercisesGoals(t *testing.T) {
	got := FilterExercises(ExerciseLibrary, ExerciseFilter{
		FitnessLevel: "intermediate",
		Equipment:    "gym",
		WorkoutGoals: []string{"endurance"},
	})
	if len(got) == 0 {
		t.Fatal("expected endurance exercises")
	}
	for _, ex := range got {
		if !sharesAny(ex.Goals, []string{"endurance"}) {
			t.Fatalf("%q does not serve the endurance goal", ex.Name)
		}
	}
}

func TestFilterExercisesImpactOverride(t *testing.T) {
	got := FilterExercises(ExerciseLibrary, ExerciseFilter{
		FitnessLevel: "intermediate",
		Equipment:    "gym",
		ImpactLevel:  "low",
	})
	for _, ex := range got {
		if ex.ImpactLevel != "low" {
			t.Fatalf("impact override returned %q with level %q", ex.Name, ex.ImpactLevel)
		}
	}
}

func TestDefaultExercisesNonEmpty(t *testing.T) {
	for _, difficulty := range []string{"beginner", "intermediate", "advanced", "unknown"} {
		if got := DefaultExercises(difficulty); len(got) == 0 {
			t.Fatalf("no fallback exercises for %q", difficulty)
		}
	}
}
