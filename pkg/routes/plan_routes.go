package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterPlanRoutes(app *fiber.App) {
	plan := app.Group("/plan", middleware.JWTProtected())
	plan.Post("/generate", controllers.GeneratePlan)
	plan.Post("/regenerate", controllers.RegeneratePlan)
	plan.Get("/weeks", controllers.GetAllWeeks)
	plan.Get("/current", controllers.GetCurrentWeek)
	plan.Get("/weeks/:week", controllers.GetWeek)
}
