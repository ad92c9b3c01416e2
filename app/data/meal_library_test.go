package data

import (
	"testing"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
)

func TestFilterMealsVegetarianTextScan(t *testing.T) {
	got := FilterMeals(MealLibrary, MealFilter{DietaryRestrictions: []string{"vegetarian"}})
	if len(got) == 0 {
		t.Fatal("expected vegetarian-compatible meals")
	}
	for _, meal := range got {
		// An untagged meal survives only when no example mentions meat.
		if !sharesAny(meal.DietaryTags, []string{"vegetarian"}) && hasMeatExample(meal) {
			t.Fatalf("meal %q with meat example passed the vegetarian filter", meal.Instruction)
		}
	}
}

func TestFilterMealsVeganRequiresTag(t *testing.T) {
	got := FilterMeals(MealLibrary, MealFilter{DietaryRestrictions: []string{"vegan"}})
	for _, meal := range got {
		if !sharesAny(meal.DietaryTags, []string{"vegan"}) {
			t.Fatalf("untagged meal %q passed the vegan filter", meal.Instruction)
		}
	}
}

func TestFilterMealsPrepTime(t *testing.T) {
	quick := FilterMeals(MealLibrary, MealFilter{MealPrepTime: "quick"})
	if len(quick) == 0 {
		t.Fatal("expected quick meals")
	}
	for _, meal := range quick {
		if meal.PrepTime != "quick" {
			t.Fatalf("quick filter returned %q meal", meal.PrepTime)
		}
	}

	elaborate := FilterMeals(MealLibrary, MealFilter{MealPrepTime: "elaborate"})
	for _, meal := range elaborate {
		if meal.PrepTime == "quick" {
			t.Fatal("elaborate filter returned a quick meal")
		}
	}
}

func TestFilterMealsCookingSkill(t *testing.T) {
	got := FilterMeals(MealLibrary, MealFilter{CookingSkill: "beginner"})
	for _, meal := range got {
		if meal.Difficulty == "advanced" {
			t.Fatal("beginner cook was offered an advanced recipe")
		}
	}
}

func TestHasMeatExample(t *testing.T) {
	tests := []struct {
		name     string
		examples []string
		want     bool
	}{
		{"explicit meat", []string{"Grilled Chicken breast with rice"}, true},
		{"case insensitive", []string{"SALMON fillet"}, true},
		{"no meat", []string{"Oatmeal with berries", "Tofu scramble"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meal := models.MealDefinition{Examples: tt.examples}
			if got := hasMeatExample(meal); got != tt.want {
				t.Fatalf("hasMeatExample = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultMealPerSlot(t *testing.T) {
	for _, slot := range []string{"breakfast", "lunch", "dinner", "snack"} {
		meal := DefaultMeal(slot)
		if meal.MealType != slot {
			t.Fatalf("DefaultMeal(%q).MealType = %q", slot, meal.MealType)
		}
		if meal.Instruction == "" || len(meal.Examples) == 0 {
			t.Fatalf("DefaultMeal(%q) is incomplete", slot)
		}
	}
}
