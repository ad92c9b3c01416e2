package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterWorkoutRoutes(app *fiber.App) {
	workouts := app.Group("/workouts", middleware.JWTProtected())
	workouts.Post("/complete", controllers.CompleteWorkout)
	workouts.Get("/history", controllers.GetWorkoutHistory)
	workouts.Get("/stats", controllers.GetWorkoutStats)
	workouts.Get("/week/:week", controllers.GetWorkoutsForWeek)
	workouts.Get("/:id", controllers.GetWorkout)
}
