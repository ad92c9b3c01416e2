package controllers

import (
	"database/sql"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/Adityas3111N/Streak-up-backend/app/services"
	"github.com/Adityas3111N/Streak-up-backend/pkg/database"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func GetProgress(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := progressService().GetProgress(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get progress"})
	}

	return c.JSON(fiber.Map{"progress": progress})
}

func UnlockNextWeek(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := progressService().UnlockNextWeek(userID)
	if err != nil {
		switch err {
		case services.ErrWeekIncomplete:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":                 "Week completion is below the 80% unlock threshold",
				"completion_percentage": result.CompletionPercentage,
			})
		case services.ErrMaxWeekReached:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already at the final week"})
		case services.ErrPlanNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unlock next week"})
	}

	return c.JSON(fiber.Map{"message": "Week unlocked", "result": result})
}

func RecalculateStreak(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := progressService().RecalculateStreak(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recalculate streak"})
	}

	return c.JSON(fiber.Map{"message": "Streak recalculated", "progress": progress})
}

func GetWeeklyActivity(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	activity, err := progressService().GetWeeklyActivity(userID)
	if err != nil {
		if err == services.ErrPlanNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get weekly activity"})
	}

	return c.JSON(fiber.Map{"activity": activity})
}

// GetStreakCalendar lists the unique calendar dates with any counting
// activity, newest first.
func GetStreakCalendar(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	lq := queries.LogQueries{DB: database.DB}
	stamps, err := lq.GetActivityTimestamps(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get activity"})
	}

	seen := map[string]bool{}
	dates := []string{}
	for _, s := range stamps {
		d := utils.StartOfDay(s).Format("2006-01-02")
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	return c.JSON(fiber.Map{"active_dates": dates})
}

// GetDashboard aggregates the home-screen payload: progress, the
// current week, today's workout and meals, and days left to the goal.
func GetDashboard(c *fiber.Ctx) error {
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

	progress, err := progressService().GetProgress(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get progress"})
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

	today := time.Now()
	day := int(utils.StartOfDay(today).Sub(utils.StartOfDay(plan.StartDate)).Hours()/24) + 1
	if day < 1 {
		day = 1
	}
	if day > 7 {
		day = 7
	}

	wq := queries.WorkoutQueries{DB: database.DB}
	workouts, err := wq.GetWorkoutsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workouts"})
	}
	var todayWorkout *models.Workout
	for i := range workouts {
		if workouts[i].Day == day {
			todayWorkout = &workouts[i]
			break
		}
	}

	mq := queries.MealQueries{DB: database.DB}
	todayMeals, err := mq.GetMealsForDay(userID, weekNumber, day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
	}

	daysToGoal := 0
	if user.GoalDate != nil {
		daysToGoal = utils.DaysUntil(*user.GoalDate, today)
	}

	return c.JSON(fiber.Map{
		"current_week":  weekNumber,
		"day":           day,
		"week_status":   plan.Status,
		"progress":      progress,
		"today_workout": todayWorkout,
		"today_meals":   todayMeals,
		"days_to_goal":  daysToGoal,
	})
}
