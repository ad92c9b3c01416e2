package services

import "errors"

// Engine failures callers are expected to branch on. Controllers map
// these to HTTP status codes; anything else is treated as a storage
// failure and reported as a server error.
var (
	ErrOnboardingNotFound = errors.New("onboarding not completed")
	ErrOnboardingEmpty    = errors.New("onboarding answers are missing")
	ErrOnboardingExists   = errors.New("onboarding already completed")
	ErrInvalidProfile     = errors.New("invalid user profile extracted from onboarding")
	ErrPlanExists         = errors.New("plan already exists")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrMaxWeekReached     = errors.New("already at maximum week")
	ErrWeekIncomplete     = errors.New("week completion below unlock threshold")
	ErrInvalidWeek        = errors.New("week number must be between 1 and 12")
)
