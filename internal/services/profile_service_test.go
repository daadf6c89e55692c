package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/utils"
)

func validInput() OnboardingInput {
	return OnboardingInput{
		Age:           30,
		Gender:        domain.GenderMale,
		Height:        180,
		CurrentWeight: 80,
		TargetWeight:  75,
		ActivityLevel: domain.ActivityModerately,
		Goal:          domain.GoalLose,
		Rate:          domain.RateModerate,
	}
}

func TestOnboard(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)

	profile, err := svc.Onboard(context.Background(), "u1", validInput())
	require.NoError(t, err)

	assert.InDelta(t, 2259, profile.CalorieGoal, 0.001)
	// Balanced 30/40/30 at 2259 kcal.
	assert.InDelta(t, 169.425, profile.MacroGoals.Protein, 0.001)
	assert.InDelta(t, 225.9, profile.MacroGoals.Carbs, 0.001)
	assert.InDelta(t, 75.3, profile.MacroGoals.Fats, 0.001)

	require.Len(t, profile.WeightLog, 1)
	assert.Equal(t, utils.TodayKey(), profile.WeightLog[0].Date)
	assert.Equal(t, float64(80), profile.WeightLog[0].Weight)

	stored, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *profile, *stored)
}

func TestOnboardMaintainClearsRate(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)

	in := validInput()
	in.Goal = domain.GoalMaintain
	in.Rate = domain.RateAggressive

	profile, err := svc.Onboard(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Empty(t, profile.Rate)
	assert.InDelta(t, 2759, profile.CalorieGoal, 0.001, "maintain keeps TDEE")
}

func TestOnboardValidation(t *testing.T) {
	svc := NewProfileService(newFakeGateway())

	tests := []struct {
		name   string
		mutate func(*OnboardingInput)
	}{
		{"negative age", func(in *OnboardingInput) { in.Age = -1 }},
		{"zero height", func(in *OnboardingInput) { in.Height = 0 }},
		{"zero weight", func(in *OnboardingInput) { in.CurrentWeight = 0 }},
		{"zero target", func(in *OnboardingInput) { in.TargetWeight = 0 }},
		{"lose without rate", func(in *OnboardingInput) { in.Rate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Onboard(context.Background(), "u1", in)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestGetAbsentProfile(t *testing.T) {
	svc := NewProfileService(newFakeGateway())
	profile, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUpdateSettingsRecomputesGoal(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)
	_, err := svc.Onboard(context.Background(), "u1", validInput())
	require.NoError(t, err)

	// Switching to maintain drops the deficit and clears the rate.
	goal := domain.GoalMaintain
	profile, err := svc.UpdateSettings(context.Background(), "u1", domain.ProfilePatch{Goal: &goal})
	require.NoError(t, err)
	assert.InDelta(t, 2759, profile.CalorieGoal, 0.001)
	assert.Empty(t, profile.Rate)

	// Untouched attributes survive the merge.
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, float64(75), profile.TargetWeight)
}

func TestUpdateSettingsCalorieOverride(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)
	_, err := svc.Onboard(context.Background(), "u1", validInput())
	require.NoError(t, err)

	t.Run("override wins over recomputation", func(t *testing.T) {
		override := 1800.0
		profile, err := svc.UpdateSettings(context.Background(), "u1", domain.ProfilePatch{CalorieGoal: &override})
		require.NoError(t, err)
		assert.Equal(t, float64(1800), profile.CalorieGoal)
	})

	t.Run("override is clamped into the safety range", func(t *testing.T) {
		low := 500.0
		profile, err := svc.UpdateSettings(context.Background(), "u1", domain.ProfilePatch{CalorieGoal: &low})
		require.NoError(t, err)
		assert.Equal(t, float64(1200), profile.CalorieGoal)

		high := 9000.0
		profile, err = svc.UpdateSettings(context.Background(), "u1", domain.ProfilePatch{CalorieGoal: &high})
		require.NoError(t, err)
		assert.Equal(t, float64(4000), profile.CalorieGoal)
	})
}

func TestUpdateSettingsWithoutProfile(t *testing.T) {
	svc := NewProfileService(newFakeGateway())
	age := 40
	_, err := svc.UpdateSettings(context.Background(), "nobody", domain.ProfilePatch{Age: &age})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSetMacroSplit(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)
	_, err := svc.Onboard(context.Background(), "u1", validInput())
	require.NoError(t, err)

	profile, err := svc.SetMacroSplit(context.Background(), "u1",
		domain.MacroPercentages{Protein: 40, Carbs: 30, Fats: 30})
	require.NoError(t, err)

	// 40/30/30 at the stored 2259 kcal goal.
	assert.InDelta(t, 225.9, profile.MacroGoals.Protein, 0.001)
	assert.InDelta(t, 169.425, profile.MacroGoals.Carbs, 0.001)
	assert.InDelta(t, 75.3, profile.MacroGoals.Fats, 0.001)

	// Only the macro goals changed in the stored document.
	stored := gateway.profiles["u1"]
	assert.Equal(t, profile.MacroGoals, stored.MacroGoals)
	assert.InDelta(t, 2259, stored.CalorieGoal, 0.001)
}

func TestLogWeight(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)
	_, err := svc.Onboard(context.Background(), "u1", validInput())
	require.NoError(t, err)

	t.Run("same-day entry is replaced, not duplicated", func(t *testing.T) {
		profile, err := svc.LogWeight(context.Background(), "u1", 79.5)
		require.NoError(t, err)
		assert.Equal(t, 79.5, profile.CurrentWeight)
		require.Len(t, profile.WeightLog, 1, "onboarding already logged today")
		assert.Equal(t, 79.5, profile.WeightLog[0].Weight)
	})

	t.Run("non-positive weight is rejected", func(t *testing.T) {
		_, err := svc.LogWeight(context.Background(), "u1", 0)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestProfileTransportFailure(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewProfileService(gateway)

	gateway.failNext = errors.New("connection refused")
	_, err := svc.Onboard(context.Background(), "u1", validInput())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransport, apperrors.KindOf(err))
}
