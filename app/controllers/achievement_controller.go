package controllers

import (
	"github.com/Adityas3111N/Streak-up-backend/app/services"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func GetAchievements(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	achievements, err := achievementService().GetUserAchievements(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get achievements"})
	}

	return c.JSON(fiber.Map{"achievements": achievements})
}

func GetBadgeCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"badges": services.BadgeCatalog})
}
