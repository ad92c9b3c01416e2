package services

import (
	"database/sql"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/google/uuid"
)

// BadgeDefinition is a static badge the progress engine can award.
type BadgeDefinition struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // milestone | streak | volume
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BadgeStats is the snapshot badge eligibility is judged against.
type BadgeStats struct {
	TotalWorkouts int
	TotalMeals    int
	CurrentStreak int
	LongestStreak int
	// WeeksAdvanced is the highest week number that has passed the
	// unlock gate.
	WeeksAdvanced int
}

var BadgeCatalog = []BadgeDefinition{
	{ID: "first_workout", Type: "milestone", Name: "First Step", Description: "Complete your first workout"},
	{ID: "first_meal", Type: "milestone", Name: "Fueled Up", Description: "Log your first meal"},
	{ID: "streak_3", Type: "streak", Name: "On a Roll", Description: "Stay active 3 days in a row"},
	{ID: "streak_7", Type: "streak", Name: "Week Warrior", Description: "Stay active 7 days in a row"},
	{ID: "streak_14", Type: "streak", Name: "Fortnight Force", Description: "Stay active 14 days in a row"},
	{ID: "streak_30", Type: "streak", Name: "Unstoppable", Description: "Stay active 30 days in a row"},
	{ID: "week_1_complete", Type: "milestone", Name: "Foundation Laid", Description: "Finish week 1 of your plan"},
	{ID: "week_4_complete", Type: "milestone", Name: "One Month Strong", Description: "Finish week 4 of your plan"},
	{ID: "week_12_complete", Type: "milestone", Name: "Transformation", Description: "Finish all 12 weeks of your plan"},
	{ID: "workouts_10", Type: "volume", Name: "Double Digits", Description: "Complete 10 workouts"},
	{ID: "workouts_50", Type: "volume", Name: "Gym Regular", Description: "Complete 50 workouts"},
	{ID: "meals_30", Type: "volume", Name: "Meal Master", Description: "Log 30 meals"},
}

// badgeEligible reports whether the stats satisfy one badge. Streak
// badges use the longest streak so a later reset cannot revoke them.
func badgeEligible(id string, stats BadgeStats) bool {
	switch id {
	case "first_workout":
		return stats.TotalWorkouts >= 1
	case "first_meal":
		return stats.TotalMeals >= 1
	case "streak_3":
		return stats.LongestStreak >= 3
	case "streak_7":
		return stats.LongestStreak >= 7
	case "streak_14":
		return stats.LongestStreak >= 14
	case "streak_30":
		return stats.LongestStreak >= 30
	case "week_1_complete":
		return stats.WeeksAdvanced >= 1
	case "week_4_complete":
		return stats.WeeksAdvanced >= 4
	case "week_12_complete":
		return stats.WeeksAdvanced >= models.PlanWeeks
	case "workouts_10":
		return stats.TotalWorkouts >= 10
	case "workouts_50":
		return stats.TotalWorkouts >= 50
	case "meals_30":
		return stats.TotalMeals >= 30
	}
	return false
}

type AchievementService struct {
	Achievements *queries.AchievementQueries
}

func NewAchievementService(db *sql.DB) *AchievementService {
	return &AchievementService{Achievements: &queries.AchievementQueries{DB: db}}
}

// CheckAndAwardBadges grants every badge the stats now satisfy and the
// user does not hold yet, returning only the newly granted ones.
func (s *AchievementService) CheckAndAwardBadges(userID uuid.UUID, stats BadgeStats) ([]models.AchievementView, error) {
	existing, err := s.Achievements.GetAchievementsByUser(userID)
	if err != nil {
		return nil, err
	}
	held := map[string]bool{}
	for _, a := range existing {
		held[a.BadgeID] = true
	}

	var awarded []models.AchievementView
	for _, badge := range BadgeCatalog {
		if held[badge.ID] || !badgeEligible(badge.ID, stats) {
			continue
		}
		a := models.Achievement{
			ID:         uuid.New(),
			UserID:     userID,
			BadgeID:    badge.ID,
			BadgeType:  badge.Type,
			UnlockedAt: time.Now(),
		}
		if err := s.Achievements.CreateAchievement(&a); err != nil {
			return awarded, err
		}
		awarded = append(awarded, models.AchievementView{
			Achievement: a,
			Name:        badge.Name,
			Description: badge.Description,
		})
	}
	return awarded, nil
}

// GetUserAchievements returns the user's unlocked badges joined with
// the catalog metadata, in unlock order.
func (s *AchievementService) GetUserAchievements(userID uuid.UUID) ([]models.AchievementView, error) {
	unlocked, err := s.Achievements.GetAchievementsByUser(userID)
	if err != nil {
		return nil, err
	}
	byID := map[string]BadgeDefinition{}
	for _, badge := range BadgeCatalog {
		byID[badge.ID] = badge
	}

	views := make([]models.AchievementView, 0, len(unlocked))
	for _, a := range unlocked {
		badge := byID[a.BadgeID]
		views = append(views, models.AchievementView{
			Achievement: a,
			Name:        badge.Name,
			Description: badge.Description,
		})
	}
	return views, nil
}
