package services

import (
	"math"

	"github.com/Adityas3111N/Streak-up-backend/app/data"
	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
)

// GenerateMeal selects a meal template for one day and slot. The rng
// index is drawn against the slot-filtered list before the week-based
// difficulty trim; preserving that order keeps regenerated plans
// identical to previously stored ones.
func GenerateMeal(catalog []models.MealDefinition, profile models.UserProfile, weekNumber, day int, mealType string, rng *utils.SeededRandom) models.MealDefinition {
	available := data.FilterMeals(catalog, data.MealFilter{
		DietaryRestrictions: profile.DietaryRestrictions,
		CuisinePreferences:  profile.CuisinePreferences,
		MealPrepTime:        profile.MealPrepTime,
		CookingSkill:        profile.CookingSkill,
	})

	var slotFiltered []models.MealDefinition
	for _, m := range available {
		if m.MealType == mealType {
			slotFiltered = append(slotFiltered, m)
		}
	}
	if len(slotFiltered) == 0 {
		return data.DefaultMeal(mealType)
	}

	mealIndex := int(math.Floor(rng.Next() * float64(len(slotFiltered))))

	// Mirror the workout ramp, but only trim: early weeks drop advanced
	// recipes, late weeks drop beginner ones.
	var weekFiltered []models.MealDefinition
	for _, m := range slotFiltered {
		if weekNumber <= 2 && m.Difficulty == "advanced" {
			continue
		}
		if weekNumber >= 10 && m.Difficulty == "beginner" {
			continue
		}
		weekFiltered = append(weekFiltered, m)
	}

	candidates := weekFiltered
	if len(candidates) == 0 {
		candidates = slotFiltered
	}

	return candidates[mealIndex%len(candidates)]
}
