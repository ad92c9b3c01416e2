package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnswerValue is the tagged union an onboarding answer may carry:
// string, number, boolean or list of strings. Anything else decodes
// to an empty value and the profile extractor falls back to defaults.
type AnswerValue struct {
	Str    string
	Num    float64
	Bool   bool
	List   []string
	IsStr  bool
	IsNum  bool
	IsBool bool
	IsList bool
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	*v = AnswerValue{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Str = s
		v.IsStr = true
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Num = n
		v.IsNum = true
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.Bool = b
		v.IsBool = true
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		v.List = list
		v.IsList = true
		return nil
	}

	// Unknown shape: keep the zero value, extraction will default it.
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.IsStr:
		return json.Marshal(v.Str)
	case v.IsNum:
		return json.Marshal(v.Num)
	case v.IsBool:
		return json.Marshal(v.Bool)
	case v.IsList:
		return json.Marshal(v.List)
	}
	return []byte("null"), nil
}

type OnboardingAnswer struct {
	QuestionID string      `json:"questionId"`
	Answer     AnswerValue `json:"answer"`
}

type Onboarding struct {
	ID          uuid.UUID          `json:"id" db:"id"`
	UserID      uuid.UUID          `json:"user_id" db:"user_id"`
	Answers     []OnboardingAnswer `json:"answers" db:"answers"`
	GoalDate    *time.Time         `json:"goal_date,omitempty" db:"goal_date"`
	CompletedAt time.Time          `json:"completed_at" db:"completed_at"`
}

type SubmitOnboardingRequest struct {
	Answers  []OnboardingAnswer `json:"answers" validate:"required,min=1"`
	GoalDate string             `json:"goal_date,omitempty"`
}
