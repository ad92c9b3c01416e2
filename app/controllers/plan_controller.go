package controllers

import (
	"database/sql"
	"strconv"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/Adityas3111N/Streak-up-backend/app/services"
	"github.com/Adityas3111N/Streak-up-backend/pkg/database"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func GeneratePlan(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	program, err := planService().GeneratePlan(userID)
	if err != nil {
		switch err {
		case services.ErrOnboardingNotFound, services.ErrOnboardingEmpty:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Complete onboarding before generating a plan"})
		case services.ErrInvalidProfile:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Onboarding answers could not produce a valid profile"})
		case services.ErrPlanExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Plan already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate plan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Plan generated",
		"start_date": program.StartDate,
		"weeks":      len(program.Weeks),
		"week_1":     program.Weeks[0].Plan,
	})
}

func RegeneratePlan(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	program, err := planService().RegeneratePlan(userID)
	if err != nil {
		switch err {
		case services.ErrOnboardingNotFound, services.ErrOnboardingEmpty:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Complete onboarding before generating a plan"})
		case services.ErrInvalidProfile:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Onboarding answers could not produce a valid profile"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to regenerate plan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Plan regenerated",
		"start_date": program.StartDate,
		"weeks":      len(program.Weeks),
		"week_1":     program.Weeks[0].Plan,
	})
}

func GetAllWeeks(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	weeks, err := planService().GetAllWeeks(userID)
	if err != nil {
		if err == services.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get weeks"})
	}

	return c.JSON(fiber.Map{"weeks": weeks})
}

// GetWeek returns one week of the plan. Locked weeks expose only their
// status and dates; workouts and meals stay hidden until unlocked.
func GetWeek(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	weekNumber, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid week number"})
	}

	plan, err := planService().GetWeek(userID, weekNumber)
	if err != nil {
		switch err {
		case services.ErrInvalidWeek:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Week number must be between 1 and 12"})
		case services.ErrPlanNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get week"})
	}

	if plan.Status == models.WeekStatusLocked {
		return c.JSON(fiber.Map{"week": models.WeekOverview{
			WeekNumber: plan.WeekNumber,
			Status:     plan.Status,
			StartDate:  plan.StartDate,
			EndDate:    plan.EndDate,
		}})
	}

	wq := queries.WorkoutQueries{DB: database.DB}
	workouts, err := wq.GetWorkoutsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workouts"})
	}
	mq := queries.MealQueries{DB: database.DB}
	meals, err := mq.GetMealsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
	}

	return c.JSON(fiber.Map{"week": plan, "workouts": workouts, "meals": meals})
}

// GetCurrentWeek resolves the user's week pointer and returns that week
// in full.
func GetCurrentWeek(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	uq := queries.UserQueries{DB: database.DB}
	user, err := uq.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get user"})
	}
	weekNumber := user.CurrentWeek
	if weekNumber < 1 {
		weekNumber = 1
	}

	plan, err := planService().GetWeek(userID, weekNumber)
	if err != nil {
		if err == services.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get week"})
	}

	wq := queries.WorkoutQueries{DB: database.DB}
	workouts, err := wq.GetWorkoutsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workouts"})
	}
	mq := queries.MealQueries{DB: database.DB}
	meals, err := mq.GetMealsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
	}

	return c.JSON(fiber.Map{"week": plan, "workouts": workouts, "meals": meals})
}
