package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterOnboardingRoutes(app *fiber.App) {
	onboarding := app.Group("/onboarding", middleware.JWTProtected())
	onboarding.Post("/", controllers.SubmitOnboarding)
	onboarding.Get("/", controllers.GetOnboarding)
}
