package services

import (
	"database/sql"
	"sort"
	"time"

	"github.com/Adityas3111N/Streak-up-backend/app/models"
	"github.com/Adityas3111N/Streak-up-backend/app/queries"
	"github.com/Adityas3111N/Streak-up-backend/pkg/utils"
	"github.com/google/uuid"
)

// ApplyActivity advances streak state for one non-skipped activity at
// the given time. The first event of a day decides: an active yesterday
// extends the streak, anything older restarts it at one. Later events
// on the same day change nothing.
func ApplyActivity(p *models.Progress, at time.Time) {
	if !p.LastActiveDate.IsZero() && utils.SameDay(p.LastActiveDate, at) {
		return
	}
	yesterday := utils.StartOfDay(at).AddDate(0, 0, -1)
	if !p.LastActiveDate.IsZero() && utils.SameDay(p.LastActiveDate, yesterday) {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastActiveDate = utils.StartOfDay(at)
}

// RebuildStreak derives current and longest streaks from raw activity
// timestamps. The current streak counts the consecutive-day run ending
// today or yesterday; a run that ended earlier counts as zero.
func RebuildStreak(stamps []time.Time, today time.Time) (current, longest int) {
	if len(stamps) == 0 {
		return 0, 0
	}

	seen := map[time.Time]bool{}
	var days []time.Time
	for _, s := range stamps {
		d := utils.StartOfDay(s)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Equal(days[i].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	t := utils.StartOfDay(today)
	if days[0].Equal(t) || days[0].Equal(t.AddDate(0, 0, -1)) {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Equal(days[i].AddDate(0, 0, 1)) {
				current++
			} else {
				break
			}
		}
	}
	return current, longest
}

// UnlockResult carries the outcome of an unlock attempt. The completion
// percentage is filled in even when the attempt is refused so callers
// can report how far the user is from the threshold.
type UnlockResult struct {
	CompletionPercentage int                      `json:"completion_percentage"`
	UnlockedWeek         int                      `json:"unlocked_week,omitempty"`
	PlanCompleted        bool                     `json:"plan_completed,omitempty"`
	NewBadges            []models.AchievementView `json:"new_badges,omitempty"`
}

// ProgressService owns activity logging, streaks and the weekly unlock
// gate. Every mutation runs under the per-user lock.
type ProgressService struct {
	Progress     *queries.ProgressQueries
	Logs         *queries.LogQueries
	Plans        *queries.PlanQueries
	Users        *queries.UserQueries
	Workouts     *queries.WorkoutQueries
	Meals        *queries.MealQueries
	Achievements *AchievementService
	Locks        *utils.UserLocks
}

func NewProgressService(db *sql.DB, locks *utils.UserLocks) *ProgressService {
	return &ProgressService{
		Progress:     &queries.ProgressQueries{DB: db},
		Logs:         &queries.LogQueries{DB: db},
		Plans:        &queries.PlanQueries{DB: db},
		Users:        &queries.UserQueries{DB: db},
		Workouts:     &queries.WorkoutQueries{DB: db},
		Meals:        &queries.MealQueries{DB: db},
		Achievements: NewAchievementService(db),
		Locks:        locks,
	}
}

// RecordWorkoutCompletion logs a finished session, bumps totals and the
// streak, and awards any badges the new totals satisfy.
func (s *ProgressService) RecordWorkoutCompletion(userID uuid.UUID, req models.CompleteWorkoutRequest) (models.Progress, []models.AchievementView, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	workoutID, err := uuid.Parse(req.WorkoutID)
	if err != nil {
		return models.Progress{}, nil, ErrWorkoutNotFound
	}
	workout, err := s.Workouts.GetWorkoutByID(workoutID)
	if err != nil || workout.UserID != userID {
		return models.Progress{}, nil, ErrWorkoutNotFound
	}

	now := time.Now()
	log := models.WorkoutLog{
		ID:                 uuid.New(),
		UserID:             userID,
		WorkoutID:          workoutID,
		ExercisesCompleted: req.ExercisesCompleted,
		Notes:              req.Notes,
		CompletedAt:        now,
	}
	if err := s.Logs.CreateWorkoutLog(&log); err != nil {
		return models.Progress{}, nil, err
	}

	progress, err := s.Progress.GetOrCreateProgress(userID)
	if err != nil {
		return models.Progress{}, nil, err
	}
	progress.TotalWorkoutsCompleted++
	ApplyActivity(&progress, now)
	if err := s.Progress.SaveProgress(&progress); err != nil {
		return models.Progress{}, nil, err
	}

	badges, err := s.Achievements.CheckAndAwardBadges(userID, s.badgeStats(progress, 0))
	if err != nil {
		return progress, nil, err
	}
	return progress, badges, nil
}

// RecordMealEvent logs a meal. A skipped meal is recorded for history
// but never touches totals, the streak or badges.
func (s *ProgressService) RecordMealEvent(userID uuid.UUID, req models.LogMealRequest) (models.Progress, []models.AchievementView, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	mealID, err := uuid.Parse(req.MealID)
	if err != nil {
		return models.Progress{}, nil, ErrMealNotFound
	}
	meal, err := s.Meals.GetMealByID(mealID)
	if err != nil || meal.UserID != userID {
		return models.Progress{}, nil, ErrMealNotFound
	}

	now := time.Now()
	log := models.MealLog{
		ID:          uuid.New(),
		UserID:      userID,
		MealID:      mealID,
		Skipped:     req.Skipped,
		CompletedAt: now,
	}
	if err := s.Logs.CreateMealLog(&log); err != nil {
		return models.Progress{}, nil, err
	}

	progress, err := s.Progress.GetOrCreateProgress(userID)
	if err != nil {
		return models.Progress{}, nil, err
	}
	if req.Skipped {
		return progress, nil, nil
	}

	progress.TotalMealsLogged++
	ApplyActivity(&progress, now)
	if err := s.Progress.SaveProgress(&progress); err != nil {
		return models.Progress{}, nil, err
	}

	badges, err := s.Achievements.CheckAndAwardBadges(userID, s.badgeStats(progress, 0))
	if err != nil {
		return progress, nil, err
	}
	return progress, badges, nil
}

// RecalculateStreak rebuilds streak state from the activity logs. The
// stored longest streak is kept if it exceeds the rebuilt one.
func (s *ProgressService) RecalculateStreak(userID uuid.UUID) (models.Progress, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	progress, err := s.Progress.GetOrCreateProgress(userID)
	if err != nil {
		return models.Progress{}, err
	}
	stamps, err := s.Logs.GetActivityTimestamps(userID)
	if err != nil {
		return models.Progress{}, err
	}

	current, longest := RebuildStreak(stamps, time.Now())
	progress.CurrentStreak = current
	if longest > progress.LongestStreak {
		progress.LongestStreak = longest
	}
	if len(stamps) > 0 {
		progress.LastActiveDate = utils.StartOfDay(stamps[0])
	}
	if err := s.Progress.SaveProgress(&progress); err != nil {
		return models.Progress{}, err
	}
	return progress, nil
}

func (s *ProgressService) GetProgress(userID uuid.UUID) (models.Progress, error) {
	return s.Progress.GetOrCreateProgress(userID)
}

// UnlockNextWeek evaluates the current week's completion and, when it
// clears the threshold, unlocks the next week and advances the user's
// week pointer. The completion rate is stored on every attempt, pass
// or fail.
func (s *ProgressService) UnlockNextWeek(userID uuid.UUID) (UnlockResult, error) {
	unlock := s.Locks.Lock(userID)
	defer unlock()

	user, err := s.Users.GetUserByID(userID)
	if err != nil {
		return UnlockResult{}, err
	}
	week := user.CurrentWeek
	if week < 1 {
		week = 1
	}
	if week >= models.PlanWeeks {
		return UnlockResult{}, ErrMaxWeekReached
	}

	plan, err := s.Plans.GetWeeklyPlan(userID, week)
	if err != nil {
		if err == sql.ErrNoRows {
			return UnlockResult{}, ErrPlanNotFound
		}
		return UnlockResult{}, err
	}

	completedWorkouts, err := s.Logs.CountCompletedWorkoutsForWeek(userID, week)
	if err != nil {
		return UnlockResult{}, err
	}
	loggedMeals, err := s.Logs.CountLoggedMealsForWeek(userID, week)
	if err != nil {
		return UnlockResult{}, err
	}
	pct := CalculateWeekCompletion(len(plan.Workouts), completedWorkouts, len(plan.Meals), loggedMeals)

	progress, err := s.Progress.GetOrCreateProgress(userID)
	if err != nil {
		return UnlockResult{}, err
	}
	progress.WeeklyCompletionRate[week] = pct
	if err := s.Progress.SaveProgress(&progress); err != nil {
		return UnlockResult{}, err
	}

	result := UnlockResult{CompletionPercentage: pct}
	if !ShouldUnlockNextWeek(pct) {
		return result, ErrWeekIncomplete
	}

	if err := s.Plans.UpdateWeekStatus(userID, week+1, models.WeekStatusUnlocked); err != nil {
		return result, err
	}
	if pct == 100 {
		if err := s.Plans.UpdateWeekStatus(userID, week, models.WeekStatusCompleted); err != nil {
			return result, err
		}
	}
	if err := s.Users.UpdateCurrentWeek(userID, week+1); err != nil {
		return result, err
	}
	result.UnlockedWeek = week + 1
	result.PlanCompleted = week+1 == models.PlanWeeks

	badges, err := s.Achievements.CheckAndAwardBadges(userID, s.badgeStats(progress, week))
	if err != nil {
		return result, err
	}
	result.NewBadges = badges
	return result, nil
}

// GetWeeklyActivity builds the per-day activity grid for every plan
// week up to today. Workouts score two points, meals one.
func (s *ProgressService) GetWeeklyActivity(userID uuid.UUID) ([]models.WeeklyActivity, error) {
	firstWeek, err := s.Plans.GetWeeklyPlan(userID, 1)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	start := firstWeek.StartDate
	_, planEnd := utils.WeekDates(start, models.PlanWeeks)

	events, err := s.Logs.GetActivityEventsBetween(userID, start, planEnd)
	if err != nil {
		return nil, err
	}

	lastWeek := utils.CurrentWeekNumber(start, time.Now())
	grid := make([]models.WeeklyActivity, lastWeek)
	for i := range grid {
		weekStart, weekEnd := utils.WeekDates(start, i+1)
		grid[i] = models.WeeklyActivity{
			WeekNumber: i + 1,
			WeekStart:  weekStart.Format("2006-01-02"),
			WeekEnd:    weekEnd.Format("2006-01-02"),
		}
	}

	for _, e := range events {
		days := int(utils.StartOfDay(e.At).Sub(utils.StartOfDay(start)).Hours() / 24)
		week := days / 7
		if week < 0 || week >= lastWeek {
			continue
		}
		switch days % 7 {
		case 0:
			grid[week].Days.Monday += e.Points
		case 1:
			grid[week].Days.Tuesday += e.Points
		case 2:
			grid[week].Days.Wednesday += e.Points
		case 3:
			grid[week].Days.Thursday += e.Points
		case 4:
			grid[week].Days.Friday += e.Points
		case 5:
			grid[week].Days.Saturday += e.Points
		case 6:
			grid[week].Days.Sunday += e.Points
		}
	}
	return grid, nil
}

// badgeStats snapshots the numbers badge eligibility is judged on.
// weeksAdvanced is nonzero only during an unlock, when the passed week
// number is known.
func (s *ProgressService) badgeStats(p models.Progress, weeksAdvanced int) BadgeStats {
	return BadgeStats{
		TotalWorkouts: p.TotalWorkoutsCompleted,
		TotalMeals:    p.TotalMealsLogged,
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		WeeksAdvanced: weeksAdvanced,
	}
}
