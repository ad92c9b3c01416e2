package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterMealRoutes(app *fiber.App) {
	meals := app.Group("/meals", middleware.JWTProtected())
	meals.Post("/log", controllers.LogMeal)
	meals.Post("/skip", controllers.SkipMeal)
	meals.Get("/history", controllers.GetMealHistory)
	meals.Get("/stats", controllers.GetMealStats)
	meals.Get("/week/:week", controllers.GetMealsForWeek)
	meals.Get("/:id", controllers.GetMeal)
}
