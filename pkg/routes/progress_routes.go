package routes

import (
	"github.com/Adityas3111N/Streak-up-backend/app/controllers"
	"github.com/Adityas3111N/Streak-up-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterProgressRoutes(app *fiber.App) {
	progress := app.Group("/progress", middleware.JWTProtected())
	progress.Get("/", controllers.GetProgress)
	progress.Post("/unlock-next-week", controllers.UnlockNextWeek)
	progress.Post("/recalculate-streak", controllers.RecalculateStreak)
	progress.Get("/activity", controllers.GetWeeklyActivity)
	progress.Get("/calendar", controllers.GetStreakCalendar)
	progress.Get("/dashboard", controllers.GetDashboard)
}
