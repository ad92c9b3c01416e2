package controllers

import (
	"database/sql"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/Adityas3111N/Streak-up-backend/pkg/database"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SubmitOnboarding(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.SubmitOnboardingRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var goalDate *time.Time
	if req.GoalDate != "" {
		parsed, err := time.Parse("2006-01-02", req.GoalDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal_date format, use YYYY-MM-DD"})
		}
		goalDate = &parsed
	}

	oq := queries.OnboardingQueries{DB: database.DB}
	if _, err := oq.GetOnboardingByUser(userID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Onboarding already completed"})
	} else if err != sql.ErrNoRows {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to query onboarding"})
	}

	o := &models.Onboarding{
		ID:          uuid.New(),
		UserID:      userID,
		Answers:     req.Answers,
		GoalDate:    goalDate,
		CompletedAt: time.Now(),
	}
	if err := oq.CreateOnboarding(o); err != nil {
		if err == queries.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Onboarding already completed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save onboarding"})
	}

	// Plan generation is kicked off right away, but its failure does not
	// undo the saved onboarding; the client can retry via /plan/generate.
	planStatus := "generated"
	if _, err := planService().GeneratePlan(userID); err != nil {
		planStatus = "pending"
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Onboarding saved", "onboarding": o, "plan": planStatus})
}

func GetOnboarding(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	oq := queries.OnboardingQueries{DB: database.DB}
	o, err := oq.GetOnboardingByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Onboarding not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get onboarding"})
	}

	return c.JSON(fiber.Map{"onboarding": o})
}
