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
	"github.com/google/uuid"
)

func GetMealsForWeek(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	weekNumber, err := strconv.Atoi(c.Params("week"))
	if err != nil || weekNumber < 1 || weekNumber > models.PlanWeeks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Week number must be between 1 and 12"})
	}

	mq := queries.MealQueries{DB: database.DB}

	dayStr := c.Query("day")
	if dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > 7 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Day must be between 1 and 7"})
		}
		meals, err := mq.GetMealsForDay(userID, weekNumber, day)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
		}
		return c.JSON(fiber.Map{"week_number": weekNumber, "day": day, "meals": meals})
	}

	meals, err := mq.GetMealsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
	}

	return c.JSON(fiber.Map{"week_number": weekNumber, "meals": meals})
}

func LogMeal(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.LogMealRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	progress, badges, err := progressService().RecordMealEvent(userID, *req)
	if err != nil {
		if err == services.ErrMealNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log meal"})
	}

	msg := "Meal logged"
	if req.Skipped {
		msg = "Meal skipped"
	}
	return c.JSON(fiber.Map{"message": msg, "progress": progress, "new_badges": badges})
}

func GetMeal(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	mealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meal id"})
	}

	mq := queries.MealQueries{DB: database.DB}
	meal, err := mq.GetMealByID(mealID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meal"})
	}
	if meal.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meal not found"})
	}

	return c.JSON(fiber.Map{"meal": meal})
}

// SkipMeal is the explicit skip alias; it forces the skipped flag so
// the log never counts toward completion or streaks.
func SkipMeal(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.LogMealRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Skipped = true
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	progress, _, err := progressService().RecordMealEvent(userID, *req)
	if err != nil {
		if err == services.ErrMealNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meal not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to skip meal"})
	}

	return c.JSON(fiber.Map{"message": "Meal skipped", "progress": progress})
}

func GetMealStats(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	lq := queries.LogQueries{DB: database.DB}
	logged, skipped, err := lq.CountMealLogs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meal stats"})
	}

	rate := 0
	if logged+skipped > 0 {
		rate = logged * 100 / (logged + skipped)
	}
	return c.JSON(fiber.Map{"logged": logged, "skipped": skipped, "completion_rate": rate})
}

func GetMealHistory(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	lq := queries.LogQueries{DB: database.DB}
	history, err := lq.GetMealHistory(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meal history"})
	}

	return c.JSON(fiber.Map{"history": history})
}
