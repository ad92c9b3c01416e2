package data

import (
	"strings"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
)

// MealLibrary is the static meal-template catalog. Read-only at runtime.
var MealLibrary = []models.MealDefinition{
	// breakfast
	{MealType: "breakfast",
		Instruction: "Start your day with a balanced breakfast including protein and whole grains. Aim for 300-400 calories.",
		Examples: []string{
			"Greek yogurt with berries and granola",
			"Oatmeal with banana and nuts",
			"Scrambled eggs with whole grain toast",
		},
		CuisineType: []string{"american"}, PrepTime: "quick", Difficulty: "beginner",
		Calories: 350, Macros: models.Macros{Protein: "20g", Carbs: "45g", Fats: "12g"}},
	{MealType: "breakfast",
		Instruction: "Include lean protein and complex carbohydrates in your morning meal. Focus on nutrient density.",
		Examples: []string{
			"Protein pancakes with fruit",
			"Avocado toast with eggs",
			"Chia pudding with nuts",
			"Breakfast burrito with whole grain tortilla",
		},
		CuisineType: []string{"american", "mediterranean"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 400, Macros: models.Macros{Protein: "25g", Carbs: "50g", Fats: "15g"}},
	{MealType: "breakfast",
		Instruction: "Fuel your active day with a protein-rich breakfast. Include healthy fats for sustained energy.",
		Examples: []string{
			"Egg scramble with vegetables",
			"Quinoa breakfast bowl",
			"Protein smoothie with greens",
			"Whole grain toast with nut butter and banana",
		},
		CuisineType: []string{"american"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 420, Macros: models.Macros{Protein: "28g", Carbs: "48g", Fats: "16g"}},
	{MealType: "breakfast",
		Instruction: "Start your day with plant-based protein and whole grains. Perfect for sustained energy.",
		Examples: []string{
			"Chia seed pudding with berries",
			"Overnight oats with almond butter",
			"Tofu scramble with vegetables",
			"Whole grain toast with avocado and tomato",
		},
		DietaryTags: []string{"vegetarian"}, CuisineType: []string{"american", "mediterranean"},
		PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 380, Macros: models.Macros{Protein: "18g", Carbs: "52g", Fats: "14g"}},
	{MealType: "breakfast",
		Instruction: "Plant-powered breakfast with whole foods. High in fiber and nutrients.",
		Examples: []string{
			"Vegan smoothie bowl with granola",
			"Oatmeal with almond milk and fruits",
			"Avocado toast on whole grain bread",
			"Chia pudding with coconut milk",
		},
		DietaryTags: []string{"vegan"}, CuisineType: []string{"american"},
		PrepTime: "quick", Difficulty: "beginner",
		Calories: 360, Macros: models.Macros{Protein: "12g", Carbs: "55g", Fats: "18g"}},
	{MealType: "breakfast",
		Instruction: "Gluten-free breakfast options that are both nutritious and satisfying.",
		Examples: []string{
			"Scrambled eggs with sweet potato hash",
			"Greek yogurt with gluten-free granola",
			"Quinoa porridge with fruits",
			"Smoothie bowl with gluten-free toppings",
		},
		DietaryTags: []string{"gluten_free"}, CuisineType: []string{"american"},
		PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 370, Macros: models.Macros{Protein: "22g", Carbs: "42g", Fats: "15g"}},

	// lunch
	{MealType: "lunch",
		Instruction: "Have a well-balanced lunch with vegetables, lean protein, and healthy fats. Aim for 400-500 calories.",
		Examples: []string{
			"Grilled chicken salad with mixed vegetables",
			"Quinoa bowl with vegetables and chickpeas",
			"Turkey wrap with whole grain tortilla",
			"Lentil soup with whole grain bread",
		},
		CuisineType: []string{"american", "mediterranean"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 450, Macros: models.Macros{Protein: "30g", Carbs: "55g", Fats: "12g"}},
	{MealType: "lunch",
		Instruction: "Include a variety of colors and nutrients in your midday meal. Focus on whole foods.",
		Examples: []string{
			"Salmon with roasted vegetables",
			"Bean and vegetable stir-fry",
			"Chicken and vegetable skewers",
			"Mediterranean bowl with hummus",
		},
		CuisineType: []string{"mediterranean", "asian"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 480, Macros: models.Macros{Protein: "32g", Carbs: "58g", Fats: "14g"}},
	{MealType: "lunch",
		Instruction: "Opt for whole foods and avoid processed options. Ensure adequate protein and fiber.",
		Examples: []string{
			"Lean beef with sweet potato and broccoli",
			"Tuna salad with mixed greens",
			"Stuffed bell peppers with quinoa",
			"Asian-inspired chicken and vegetable bowl",
		},
		CuisineType: []string{"american", "asian"}, PrepTime: "elaborate", Difficulty: "advanced",
		Calories: 500, Macros: models.Macros{Protein: "35g", Carbs: "52g", Fats: "16g"}},
	{MealType: "lunch",
		Instruction: "Plant-based lunch with complete proteins and plenty of vegetables.",
		Examples: []string{
			"Chickpea curry with brown rice",
			"Lentil and vegetable stew",
			"Quinoa salad with roasted vegetables",
			"Vegetable stir-fry with tofu",
		},
		DietaryTags: []string{"vegetarian"}, CuisineType: []string{"asian", "mediterranean", "indian"},
		PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 420, Macros: models.Macros{Protein: "18g", Carbs: "65g", Fats: "10g"}},
	{MealType: "lunch",
		Instruction: "Nutrient-dense vegan lunch with plant proteins and colorful vegetables.",
		Examples: []string{
			"Black bean and sweet potato bowl",
			"Chickpea salad wrap",
			"Vegan buddha bowl",
			"Lentil soup with whole grain bread",
		},
		DietaryTags: []string{"vegan"}, CuisineType: []string{"mediterranean", "asian"},
		PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 410, Macros: models.Macros{Protein: "15g", Carbs: "68g", Fats: "12g"}},

	// dinner
	{MealType: "dinner",
		Instruction: "Finish your day with a nutritious dinner focusing on lean protein and vegetables. Aim for 500-600 calories.",
		Examples: []string{
			"Grilled salmon with roasted vegetables",
			"Lean beef stir-fry with brown rice",
			"Baked chicken with sweet potato and broccoli",
			"Turkey meatballs with zucchini noodles",
		},
		CuisineType: []string{"american"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 550, Macros: models.Macros{Protein: "40g", Carbs: "45g", Fats: "18g"}},
	{MealType: "dinner",
		Instruction: "Keep dinner balanced and avoid heavy meals close to bedtime. Include fiber-rich vegetables.",
		Examples: []string{
			"Herb-crusted chicken with quinoa",
			"Fish tacos with slaw",
			"Stuffed chicken breast with vegetables",
			"Lentil curry with brown rice",
		},
		CuisineType: []string{"american", "mediterranean", "indian"}, PrepTime: "elaborate", Difficulty: "advanced",
		Calories: 580, Macros: models.Macros{Protein: "42g", Carbs: "48g", Fats: "20g"}},
	{MealType: "dinner",
		Instruction: "Include quality protein sources and nutrient-dense vegetables. Maintain portion control.",
		Examples: []string{
			"Grilled steak with roasted vegetables",
			"Baked cod with quinoa and asparagus",
			"Chicken and vegetable kebabs",
			"Stuffed bell peppers with lean ground turkey",
		},
		CuisineType: []string{"american", "mediterranean"}, PrepTime: "moderate", Difficulty: "intermediate",
		Calories: 600, Macros: models.Macros{Protein: "45g", Carbs: "42g", Fats: "22g"}},
	{MealType: "dinner",
		Instruction: "Satisfying vegetarian dinner with plant proteins and wholesome ingredients.",
		Examples: []string{
			"Vegetable curry with brown rice",
			"Lentil shepherd's pie",
			"Stuffed bell peppers with quinoa",
			"Chickpea and vegetable tagine",
		},
		DietaryTags: []string{"vegetarian"}, CuisineType: []string{"indian", "mediterranean"},
		PrepTime: "elaborate", Difficulty: "advanced",
		Calories: 520, Macros: models.Macros{Protein: "20g", Carbs: "75g", Fats: "12g"}},
	{MealType: "dinner",
		Instruction: "Plant-based dinner that's both satisfying and nutritious.",
		Examples: []string{
			"Vegan chili with cornbread",
			"Stuffed portobello mushrooms",
			"Vegetable curry with jasmine rice",
			"Lentil bolognese with pasta",
		},
		DietaryTags: []string{"vegan"}, CuisineType: []string{"american", "indian", "mediterranean"},
		PrepTime: "elaborate", Difficulty: "advanced",
		Calories: 510, Macros: models.Macros{Protein: "18g", Carbs: "78g", Fats: "10g"}},

	// snacks (catalog-only; not part of the generated week)
	{MealType: "snack",
		Instruction: "Choose nutrient-dense snacks between meals. Aim for 150-200 calories.",
		Examples: []string{
			"Apple with almond butter",
			"Greek yogurt with berries",
			"Mixed nuts and dried fruit",
			"Vegetable sticks with hummus",
			"Protein bar",
			"Hard-boiled eggs",
		},
		CuisineType: []string{"american"}, PrepTime: "quick", Difficulty: "beginner",
		Calories: 175, Macros: models.Macros{Protein: "8g", Carbs: "20g", Fats: "8g"}},
	{MealType: "snack",
		Instruction: "Healthy snack options to keep you energized throughout the day.",
		Examples: []string{
			"Rice cakes with avocado",
			"Cottage cheese with fruit",
			"Trail mix",
			"Veggie chips with guacamole",
			"Protein shake",
			"Edamame",
		},
		CuisineType: []string{"american", "asian"}, PrepTime: "quick", Difficulty: "beginner",
		Calories: 190, Macros: models.Macros{Protein: "10g", Carbs: "22g", Fats: "9g"}},
}

// meatKeywords disqualify an entry for vegetarians even when its tags
// claim compatibility; the free-text scan is authoritative and a hit
// against a vegetarian-tagged entry is a catalog data-quality issue.
var meatKeywords = []string{"chicken", "beef", "turkey", "pork", "fish", "salmon", "tuna"}

type MealFilter struct {
	DietaryRestrictions []string
	CuisinePreferences  []string
	MealPrepTime        string
	CookingSkill        string
}

func FilterMeals(catalog []models.MealDefinition, f MealFilter) []models.MealDefinition {
	var out []models.MealDefinition
	for _, meal := range catalog {
		if !mealAllowed(meal, f) {
			continue
		}
		out = append(out, meal)
	}
	return out
}

func mealAllowed(meal models.MealDefinition, f MealFilter) bool {
	if len(f.DietaryRestrictions) > 0 {
		tagged := sharesAny(f.DietaryRestrictions, meal.DietaryTags)
		if !tagged && contains(f.DietaryRestrictions, "vegan") {
			return false
		}
		if !tagged && contains(f.DietaryRestrictions, "vegetarian") && hasMeatExample(meal) {
			return false
		}
	}

	if len(f.CuisinePreferences) > 0 && !sharesAny(f.CuisinePreferences, meal.CuisineType) {
		return false
	}

	if f.MealPrepTime == "quick" && meal.PrepTime != "quick" {
		return false
	}
	if f.MealPrepTime == "elaborate" && meal.PrepTime == "quick" {
		return false
	}

	if f.CookingSkill == "beginner" && meal.Difficulty == "advanced" {
		return false
	}

	return true
}

func hasMeatExample(meal models.MealDefinition) bool {
	for _, ex := range meal.Examples {
		lower := strings.ToLower(ex)
		for _, meat := range meatKeywords {
			if strings.Contains(lower, meat) {
				return true
			}
		}
	}
	return false
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// DefaultMeal is the per-slot fallback when filtering empties the
// catalog. Independent of the RNG.
func DefaultMeal(mealType string) models.MealDefinition {
	switch mealType {
	case "lunch":
		return models.MealDefinition{
			MealType:    "lunch",
			Instruction: "Have a well-balanced lunch with vegetables, lean protein, and healthy fats.",
			Examples: []string{
				"Grilled chicken salad with mixed vegetables",
				"Quinoa bowl with vegetables and chickpeas",
				"Turkey wrap with whole grain tortilla",
			},
			CuisineType: []string{"american"}, PrepTime: "moderate", Difficulty: "intermediate",
			Calories: 450, Macros: models.Macros{Protein: "30g", Carbs: "55g", Fats: "12g"},
		}
	case "dinner":
		return models.MealDefinition{
			MealType:    "dinner",
			Instruction: "Finish your day with a nutritious dinner focusing on lean protein and vegetables.",
			Examples: []string{
				"Grilled salmon with roasted vegetables",
				"Lean beef stir-fry with brown rice",
				"Baked chicken with sweet potato and broccoli",
			},
			CuisineType: []string{"american"}, PrepTime: "moderate", Difficulty: "intermediate",
			Calories: 550, Macros: models.Macros{Protein: "40g", Carbs: "45g", Fats: "18g"},
		}
	case "snack":
		return models.MealDefinition{
			MealType:    "snack",
			Instruction: "Choose nutrient-dense snacks between meals.",
			Examples: []string{
				"Apple with almond butter",
				"Greek yogurt with berries",
				"Mixed nuts and dried fruit",
			},
			CuisineType: []string{"american"}, PrepTime: "quick", Difficulty: "beginner",
			Calories: 175, Macros: models.Macros{Protein: "8g", Carbs: "20g", Fats: "8g"},
		}
	default:
		return models.MealDefinition{
			MealType:    "breakfast",
			Instruction: "Start your day with a balanced breakfast including protein and whole grains.",
			Examples: []string{
				"Greek yogurt with berries and granola",
				"Oatmeal with banana and nuts",
				"Scrambled eggs with whole grain toast",
			},
			CuisineType: []string{"american"}, PrepTime: "quick", Difficulty: "beginner",
			Calories: 350, Macros: models.Macros{Protein: "20g", Carbs: "45g", Fats: "12g"},
		}
	}
}
