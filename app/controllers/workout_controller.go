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

func GetWorkout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	wq := queries.WorkoutQueries{DB: database.DB}
	workout, err := wq.GetWorkoutByID(workoutID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workout"})
	}
	if workout.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
	}

	return c.JSON(fiber.Map{"workout": workout})
}

func GetWorkoutsForWeek(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	weekNumber, err := strconv.Atoi(c.Params("week"))
	if err != nil || weekNumber < 1 || weekNumber > models.PlanWeeks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Week number must be between 1 and 12"})
	}

	wq := queries.WorkoutQueries{DB: database.DB}
	workouts, err := wq.GetWorkoutsForWeek(userID, weekNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workouts"})
	}

	return c.JSON(fiber.Map{"week_number": weekNumber, "workouts": workouts})
}

func CompleteWorkout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CompleteWorkoutRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	progress, badges, err := progressService().RecordWorkoutCompletion(userID, *req)
	if err != nil {
		if err == services.ErrWorkoutNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete workout"})
	}

	return c.JSON(fiber.Map{"message": "Workout completed", "progress": progress, "new_badges": badges})
}

func GetWorkoutStats(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	lq := queries.LogQueries{DB: database.DB}
	total, err := lq.CountWorkoutLogs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workout stats"})
	}
	perWeek, err := lq.CountWorkoutLogsPerWeek(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workout stats"})
	}

	return c.JSON(fiber.Map{"total_completions": total, "per_week": perWeek})
}

func GetWorkoutHistory(c *fiber.Ctx) error {
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
	history, err := lq.GetWorkoutHistory(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get workout history"})
	}

	return c.JSON(fiber.Map{"history": history})
}
