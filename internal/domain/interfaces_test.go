package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilePatchApplyTo(t *testing.T) {
	base := UserProfile{
		Age:           30,
		Gender:        GenderMale,
		Height:        180,
		CurrentWeight: 80,
		TargetWeight:  75,
		ActivityLevel: ActivityModerately,
		Goal:          GoalLose,
		Rate:          RateModerate,
		CalorieGoal:   2259,
		MacroGoals:    MacroGoals{Protein: 169, Carbs: 226, Fats: 75},
		WeightLog:     []WeightLogEntry{{Date: "2025-03-01", Weight: 80}},
	}

	t.Run("empty patch preserves everything", func(t *testing.T) {
		profile := base
		ProfilePatch{}.ApplyTo(&profile)
		assert.Equal(t, base, profile)
	})

	t.Run("present fields overwrite, absent fields survive", func(t *testing.T) {
		profile := base
		weight := 78.5
		goal := GoalMaintain
		ProfilePatch{CurrentWeight: &weight, Goal: &goal}.ApplyTo(&profile)

		assert.Equal(t, 78.5, profile.CurrentWeight)
		assert.Equal(t, GoalMaintain, profile.Goal)
		assert.Equal(t, base.Age, profile.Age)
		assert.Equal(t, base.CalorieGoal, profile.CalorieGoal)
		assert.Equal(t, base.WeightLog, profile.WeightLog)
	})

	t.Run("zero values are applied when present", func(t *testing.T) {
		profile := base
		var rate WeightGoalRate
		ProfilePatch{Rate: &rate}.ApplyTo(&profile)
		assert.Empty(t, profile.Rate)
	})

	t.Run("weight log replaces wholesale", func(t *testing.T) {
		profile := base
		log := []WeightLogEntry{
			{Date: "2025-03-01", Weight: 80},
			{Date: "2025-03-08", Weight: 79.2},
		}
		ProfilePatch{WeightLog: &log}.ApplyTo(&profile)
		assert.Len(t, profile.WeightLog, 2)
	})
}

func TestMacroPercentagesSum(t *testing.T) {
	assert.Equal(t, float64(100), MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}.Sum())
	assert.Equal(t, float64(120), MacroPercentages{Protein: 50, Carbs: 40, Fats: 30}.Sum())
	assert.Equal(t, float64(0), MacroPercentages{}.Sum())
}
