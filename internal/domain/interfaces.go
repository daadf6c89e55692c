package domain

import (
	"context"
)

// ProfilePatch is a partial profile update. Nil fields are preserved on
// merge.
type ProfilePatch struct {
	Age           *int              `json:"age,omitempty"`
	Gender        *Gender           `json:"gender,omitempty"`
	Height        *float64          `json:"height,omitempty"`
	CurrentWeight *float64          `json:"currentWeight,omitempty"`
	TargetWeight  *float64          `json:"targetWeight,omitempty"`
	ActivityLevel *ActivityLevel    `json:"activityLevel,omitempty"`
	Goal          *Goal             `json:"goal,omitempty"`
	Rate          *WeightGoalRate   `json:"rate,omitempty"`
	CalorieGoal   *float64          `json:"calorieGoal,omitempty"`
	MacroGoals    *MacroGoals       `json:"macroGoals,omitempty"`
	WeightLog     *[]WeightLogEntry `json:"weightLog,omitempty"`
}

// ApplyTo writes the patch's present fields onto the profile.
func (p ProfilePatch) ApplyTo(profile *UserProfile) {
	if p.Age != nil {
		profile.Age = *p.Age
	}
	if p.Gender != nil {
		profile.Gender = *p.Gender
	}
	if p.Height != nil {
		profile.Height = *p.Height
	}
	if p.CurrentWeight != nil {
		profile.CurrentWeight = *p.CurrentWeight
	}
	if p.TargetWeight != nil {
		profile.TargetWeight = *p.TargetWeight
	}
	if p.ActivityLevel != nil {
		profile.ActivityLevel = *p.ActivityLevel
	}
	if p.Goal != nil {
		profile.Goal = *p.Goal
	}
	if p.Rate != nil {
		profile.Rate = *p.Rate
	}
	if p.CalorieGoal != nil {
		profile.CalorieGoal = *p.CalorieGoal
	}
	if p.MacroGoals != nil {
		profile.MacroGoals = *p.MacroGoals
	}
	if p.WeightLog != nil {
		profile.WeightLog = *p.WeightLog
	}
}

// Gateway is the document store behind profiles and daily logs. Each
// mutation is a single atomic replace; last write wins.
type Gateway interface {
	// GetProfile returns nil with no error when the profile is absent.
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	// PutProfile fully replaces the stored profile.
	PutProfile(ctx context.Context, userID string, profile UserProfile) error
	// MergeProfile applies the patch; fields absent from the patch are
	// preserved.
	MergeProfile(ctx context.Context, userID string, patch ProfilePatch) error
	// GetDailyLog returns an empty-entries log when no record exists
	// for the date key.
	GetDailyLog(ctx context.Context, userID, dateKey string) (DailyLog, error)
	// PutDailyLog fully replaces the stored log for the date key.
	PutDailyLog(ctx context.Context, userID, dateKey string, log DailyLog) error
}

// Classifier turns a compressed food photo into candidate entries.
type Classifier interface {
	// AnalyzeFoodImage takes base64-encoded JPEG bytes (no data-URI
	// prefix) and returns at least one candidate, or
	// ErrNoFoodIdentified when the image yields nothing.
	AnalyzeFoodImage(ctx context.Context, base64Image string) ([]AIFoodItem, error)
}
