package controllers

import (
	"github.com/Adityas3111N/Streak-up-backend/app/data"
	"github.com/Adityas3111N/Streak-up-backend/app/services"
	"github.com/Adityas3111N/Streak-up-backend/pkg/database"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// userLocks is shared by every handler so plan generation and progress
// updates for one user serialize across endpoints.
var userLocks = &utils.UserLocks{}

func planService() *services.PlanService {
	return services.NewPlanService(database.DB, data.ExerciseLibrary, data.MealLibrary, userLocks)
}

func progressService() *services.ProgressService {
	return services.NewProgressService(database.DB, userLocks)
}

func achievementService() *services.AchievementService {
	return services.NewAchievementService(database.DB)
}
