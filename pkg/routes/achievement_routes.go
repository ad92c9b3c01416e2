package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterAchievementRoutes(app *fiber.App) {
	achievements := app.Group("/achievements", middleware.JWTProtected())
	achievements.Get("/", controllers.GetAchievements)
	achievements.Get("/badges", controllers.GetBadgeCatalog)
}
