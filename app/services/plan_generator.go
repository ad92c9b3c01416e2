package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/google/uuid"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var mealSlots = []string{"breakfast", "lunch", "dinner"}

func workoutName(goals []string, weekNumber, day int) string {
	prefix := "Full Body"
	switch {
	case contains(goals, "weight_loss"):
		prefix = "Fat Burn"
	case contains(goals, "strength"), contains(goals, "muscle_gain"):
		prefix = "Strength Builder"
	case contains(goals, "endurance"):
		prefix = "Endurance"
	}
	name := "Day"
	if day >= 1 && day <= 7 {
		name = dayNames[day%7]
	}
	return fmt.Sprintf("%s Week %d - %s", prefix, weekNumber, name)
}

// BuildProgram generates the complete twelve-week program in memory.
// The rng is seeded from the user id, so for the same profile the
// catalog selections come out identical on every run; only the row ids
// and timestamps differ.
func BuildProgram(userID uuid.UUID, profile models.UserProfile, exercises []models.ExerciseDefinition, meals []models.MealDefinition, startDate time.Time) models.Program {
	rng := utils.NewSeededRandom(utils.UserSeed(userID.String()))
	days := WorkoutDays(profile.WorkoutFrequency)
	now := time.Now()

	program := models.Program{UserID: userID, StartDate: startDate}
	for week := 1; week <= models.PlanWeeks; week++ {
		weekStart, weekEnd := utils.WeekDates(startDate, week)
		pw := models.ProgramWeek{}

		for _, day := range days {
			w := models.Workout{
				ID:          uuid.New(),
				UserID:      userID,
				Name:        workoutName(profile.WorkoutGoals, week, day),
				WeekNumber:  week,
				Day:         day,
				Duration:    WorkoutDuration(week),
				Difficulty:  TargetDifficulty(profile.FitnessLevel, week),
				WorkoutType: WeekWorkoutType(week),
				Exercises:   GenerateWorkout(exercises, profile, week, day, rng),
				CreatedAt:   now,
			}
			pw.Workouts = append(pw.Workouts, w)
		}

		for day := 1; day <= 7; day++ {
			for _, slot := range mealSlots {
				def := GenerateMeal(meals, profile, week, day, slot, rng)
				m := models.Meal{
					ID:          uuid.New(),
					UserID:      userID,
					WeekNumber:  week,
					Day:         day,
					MealType:    slot,
					Instruction: def.Instruction,
					Examples:    def.Examples,
					CreatedAt:   now,
				}
				pw.Meals = append(pw.Meals, m)
			}
		}

		status := models.WeekStatusLocked
		if week == 1 {
			status = models.WeekStatusUnlocked
		}
		plan := models.WeeklyPlan{
			ID:         uuid.New(),
			UserID:     userID,
			WeekNumber: week,
			Status:     status,
			StartDate:  weekStart,
			EndDate:    weekEnd,
			CreatedAt:  now,
		}
		for _, w := range pw.Workouts {
			plan.Workouts = append(plan.Workouts, w.ID)
		}
		for _, m := range pw.Meals {
			plan.Meals = append(plan.Meals, m.ID)
		}
		pw.Plan = plan

		program.Weeks = append(program.Weeks, pw)
	}
	return program
}

// PlanService owns plan generation and week access. The exercise and
// meal catalogs are injected at construction so generation never reads
// mutable globals.
type PlanService struct {
	Onboarding *queries.OnboardingQueries
	Plans      *queries.PlanQueries
	Users      *queries.UserQueries
	Exercises  []models.ExerciseDefinition
	Meals      []models.MealDefinition
	Locks      *utils.UserLocks
}

func NewPlanService(db *sql.DB, exercises []models.ExerciseDefinition, meals []models.MealDefinition, locks *utils.UserLocks) *PlanService {
	return &PlanService{
		Onboarding: &queries.OnboardingQueries{DB: db},
		Plans:      &queries.PlanQueries{DB: db},
		Users:      &queries.UserQueries{DB: db},
		Exercises:  exercises,
		Meals:      meals,
		Locks:      locks,
	}
}

// GeneratePlan builds and stores the user's twelve-week program. It
// requires completed onboarding, refuses to overwrite an existing plan,
// and holds the user lock for the whole build-and-write sequence so two
// concurrent requests cannot both generate.
func (s *PlanService) GeneratePlan(userID uuid.UUID) (models.Program, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	onboarding, err := s.Onboarding.GetOnboardingByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Program{}, ErrOnboardingNotFound
		}
		return models.Program{}, err
	}
	if len(onboarding.Answers) == 0 {
		return models.Program{}, ErrOnboardingEmpty
	}

	count, err := s.Plans.CountPlansByUser(userID)
	if err != nil {
		return models.Program{}, err
	}
	if count > 0 {
		return models.Program{}, ErrPlanExists
	}

	profile := ExtractUserProfile(onboarding.Answers)
	if profile.FitnessLevel == "" || profile.WorkoutFrequency <= 0 {
		return models.Program{}, ErrInvalidProfile
	}

	program := BuildProgram(userID, profile, s.Exercises, s.Meals, utils.StartOfDay(time.Now()))

	if err := s.Plans.CreateProgram(&program, onboarding.GoalDate); err != nil {
		if err == queries.ErrDuplicate {
			return models.Program{}, ErrPlanExists
		}
		return models.Program{}, err
	}
	return program, nil
}

// RegeneratePlan wipes the stored program along with its logs and
// generates a fresh one from the current onboarding answers.
func (s *PlanService) RegeneratePlan(userID uuid.UUID) (models.Program, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	onboarding, err := s.Onboarding.GetOnboardingByUser(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Program{}, ErrOnboardingNotFound
		}
		return models.Program{}, err
	}
	if len(onboarding.Answers) == 0 {
		return models.Program{}, ErrOnboardingEmpty
	}

	if err := s.Plans.DeletePlanData(userID); err != nil {
		return models.Program{}, err
	}

	profile := ExtractUserProfile(onboarding.Answers)
	if profile.FitnessLevel == "" || profile.WorkoutFrequency <= 0 {
		return models.Program{}, ErrInvalidProfile
	}

	program := BuildProgram(userID, profile, s.Exercises, s.Meals, utils.StartOfDay(time.Now()))
	if err := s.Plans.CreateProgram(&program, onboarding.GoalDate); err != nil {
		return models.Program{}, err
	}
	return program, nil
}

// GetWeek returns one weekly plan regardless of its lock status; the
// caller decides how much of a locked week to expose.
func (s *PlanService) GetWeek(userID uuid.UUID, weekNumber int) (models.WeeklyPlan, error) {
	if weekNumber < 1 || weekNumber > models.PlanWeeks {
		return models.WeeklyPlan{}, ErrInvalidWeek
	}
	plan, err := s.Plans.GetWeeklyPlan(userID, weekNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.WeeklyPlan{}, ErrPlanNotFound
		}
		return models.WeeklyPlan{}, err
	}
	return plan, nil
}

func (s *PlanService) GetAllWeeks(userID uuid.UUID) ([]models.WeekOverview, error) {
	weeks, err := s.Plans.GetAllWeeks(userID)
	if err != nil {
		return nil, err
	}
	if len(weeks) == 0 {
		return nil, ErrPlanNotFound
	}
	return weeks, nil
}
