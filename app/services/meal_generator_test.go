package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Adityas3111N/Streak-up-backend/app/data"
	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
)

func TestGenerateMealDeterminism(t *testing.T) {
	profile := models.UserProfile{MealPrepTime: "moderate", CookingSkill: "intermediate"}

	a := GenerateMeal(data.MealLibrary, profile, 4, 2, "lunch", utils.NewSeededRandom(777))
	b := GenerateMeal(data.MealLibrary, profile, 4, 2, "lunch", utils.NewSeededRandom(777))

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different meals:\n%v\n%v", a, b)
	}
}

func TestGenerateMealSlot(t *testing.T) {
	profile := models.UserProfile{}
	rng := utils.NewSeededRandom(5)
	for _, slot := range []string{"breakfast", "lunch", "dinner"} {
		meal := GenerateMeal(data.MealLibrary, profile, 1, 1, slot, rng)
		if meal.MealType != slot {
			t.Fatalf("asked for %q, got %q", slot, meal.MealType)
		}
	}
}

func TestGenerateMealVegetarianNeverGetsMeat(t *testing.T) {
	catalog := []models.MealDefinition{
		{MealType: "lunch", Instruction: "Tofu bowl", Examples: []string{"Tofu with rice"},
			DietaryTags: []string{"vegetarian"}, PrepTime: "quick", Difficulty: "beginner"},
		{MealType: "lunch", Instruction: "Lentil salad", Examples: []string{"Lentils with greens"},
			DietaryTags: []string{"vegetarian", "vegan"}, PrepTime: "quick", Difficulty: "beginner"},
		{MealType: "lunch", Instruction: "Protein plate", Examples: []string{"Grilled chicken with quinoa"},
			PrepTime: "quick", Difficulty: "beginner"},
	}
	profile := models.UserProfile{DietaryRestrictions: []string{"vegetarian"}}

	meats := []string{"chicken", "beef", "turkey", "pork", "fish", "salmon", "tuna"}
	for seed := int64(0); seed < 50; seed++ {
		meal := GenerateMeal(catalog, profile, 1, 1, "lunch", utils.NewSeededRandom(seed))
		for _, ex := range meal.Examples {
			lower := strings.ToLower(ex)
			for _, meat := range meats {
				if strings.Contains(lower, meat) {
					t.Fatalf("seed %d: vegetarian got %q", seed, ex)
				}
			}
		}
	}
}

func TestGenerateMealFallsBackWhenFiltered(t *testing.T) {
	catalog := []models.MealDefinition{
		{MealType: "lunch", Instruction: "Steak plate", Examples: []string{"Beef steak"},
			PrepTime: "elaborate", Difficulty: "advanced"},
	}
	profile := models.UserProfile{DietaryRestrictions: []string{"vegan"}}

	meal := GenerateMeal(catalog, profile, 1, 1, "lunch", utils.NewSeededRandom(1))
	want := data.DefaultMeal("lunch")
	if meal.Instruction != want.Instruction {
		t.Fatalf("expected the lunch fallback, got %q", meal.Instruction)
	}
}

func TestGenerateMealWeekTrimKeepsSlotWhenEmpty(t *testing.T) {
	// Only advanced recipes exist; the early-week trim would empty the
	// list, so the slot-filtered candidates must be used instead.
	catalog := []models.MealDefinition{
		{MealType: "dinner", Instruction: "Complex dish", Examples: []string{"Vegetable terrine"},
			PrepTime: "elaborate", Difficulty: "advanced"},
	}
	profile := models.UserProfile{}

	meal := GenerateMeal(catalog, profile, 1, 1, "dinner", utils.NewSeededRandom(3))
	if meal.Instruction != "Complex dish" {
		t.Fatalf("got %q, want the only catalog entry", meal.Instruction)
	}
}
