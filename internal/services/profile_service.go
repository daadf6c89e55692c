package services

import (
	"context"
	"fmt"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/nutrition"
	"github.com/arkadyvolkov/nutrition-helper/internal/utils"
)

// defaultSplit is the Balanced preset applied at onboarding.
var defaultSplit = domain.MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}

// ProfileService owns the user's goal/profile document.
type ProfileService struct {
	gateway domain.Gateway
}

func NewProfileService(gateway domain.Gateway) *ProfileService {
	return &ProfileService{gateway: gateway}
}

// OnboardingInput is everything collected during onboarding.
type OnboardingInput struct {
	Age           int
	Gender        domain.Gender
	Height        float64
	CurrentWeight float64
	TargetWeight  float64
	ActivityLevel domain.ActivityLevel
	Goal          domain.Goal
	Rate          domain.WeightGoalRate
}

func (in OnboardingInput) validate() error {
	if in.Age < 0 {
		return apperrors.NewValidation("Age must not be negative.")
	}
	if in.Height <= 0 {
		return apperrors.NewValidation("Height must be positive.")
	}
	if in.CurrentWeight <= 0 || in.TargetWeight <= 0 {
		return apperrors.NewValidation("Weight must be positive.")
	}
	if in.Goal != domain.GoalMaintain && in.Rate == "" {
		return apperrors.NewValidation("Pick a rate for your goal.")
	}
	return nil
}

// Onboard computes the user's goals from their attributes, seeds the
// weight log with the current weight and persists the new profile.
func (s *ProfileService) Onboard(ctx context.Context, userID string, in OnboardingInput) (*domain.UserProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rate := in.Rate
	if in.Goal == domain.GoalMaintain {
		rate = ""
	}

	bmr := nutrition.BMR(in.Gender, in.CurrentWeight, in.Height, in.Age)
	tdee := nutrition.TDEE(bmr, in.ActivityLevel)
	calorieGoal := clampGoal(nutrition.CalorieGoal(tdee, in.Goal, rate))

	profile := domain.UserProfile{
		Age:           in.Age,
		Gender:        in.Gender,
		Height:        in.Height,
		CurrentWeight: in.CurrentWeight,
		TargetWeight:  in.TargetWeight,
		ActivityLevel: in.ActivityLevel,
		Goal:          in.Goal,
		Rate:          rate,
		CalorieGoal:   calorieGoal,
		MacroGoals:    nutrition.MacroGrams(defaultSplit, calorieGoal),
		WeightLog: []domain.WeightLogEntry{
			{Date: utils.TodayKey(), Weight: in.CurrentWeight},
		},
	}

	if err := s.gateway.PutProfile(ctx, userID, profile); err != nil {
		return nil, apperrors.NewTransport(err, "Could not save your profile. Please try again.")
	}
	return &profile, nil
}

// Get fetches the profile; nil without error when the user has not
// onboarded yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.gateway.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.NewTransport(err, "Could not load your profile. Please try again.")
	}
	return profile, nil
}

// UpdateSettings merges the patch into the profile and, unless the
// patch carries an explicit calorie override, recomputes the calorie
// goal from the resulting attributes. A user-supplied override is
// clamped into the safety range.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	profile, err := s.gateway.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.NewTransport(err, "Could not load your profile. Please try again.")
	}
	if profile == nil {
		return nil, apperrors.NewValidation("Complete onboarding first.")
	}

	patch.ApplyTo(profile)
	if profile.Goal == domain.GoalMaintain {
		profile.Rate = ""
	}

	if patch.CalorieGoal == nil {
		bmr := nutrition.BMR(profile.Gender, profile.CurrentWeight, profile.Height, profile.Age)
		tdee := nutrition.TDEE(bmr, profile.ActivityLevel)
		profile.CalorieGoal = nutrition.CalorieGoal(tdee, profile.Goal, profile.Rate)
	}
	profile.CalorieGoal = clampGoal(profile.CalorieGoal)

	if err := s.gateway.PutProfile(ctx, userID, *profile); err != nil {
		return nil, apperrors.NewTransport(err, "Could not save your settings. Please try again.")
	}
	return profile, nil
}

// SetMacroSplit recomputes gram targets from a percentage split at the
// current calorie goal and merges them into the profile.
func (s *ProfileService) SetMacroSplit(ctx context.Context, userID string, split domain.MacroPercentages) (*domain.UserProfile, error) {
	profile, err := s.gateway.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.NewTransport(err, "Could not load your profile. Please try again.")
	}
	if profile == nil {
		return nil, apperrors.NewValidation("Complete onboarding first.")
	}

	goals := nutrition.MacroGrams(split, profile.CalorieGoal)
	if err := s.gateway.MergeProfile(ctx, userID, domain.ProfilePatch{MacroGoals: &goals}); err != nil {
		return nil, apperrors.NewTransport(err, "Could not save your macro goals. Please try again.")
	}
	profile.MacroGoals = goals
	return profile, nil
}

// LogWeight appends a weight measurement for today and updates the
// current weight.
func (s *ProfileService) LogWeight(ctx context.Context, userID string, weightKg float64) (*domain.UserProfile, error) {
	if weightKg <= 0 {
		return nil, apperrors.NewValidation("Weight must be positive.")
	}

	profile, err := s.gateway.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperrors.NewTransport(err, "Could not load your profile. Please try again.")
	}
	if profile == nil {
		return nil, apperrors.NewValidation("Complete onboarding first.")
	}

	today := utils.TodayKey()
	weightLog := append([]domain.WeightLogEntry{}, profile.WeightLog...)
	replaced := false
	for i := range weightLog {
		if weightLog[i].Date == today {
			weightLog[i].Weight = weightKg
			replaced = true
			break
		}
	}
	if !replaced {
		weightLog = append(weightLog, domain.WeightLogEntry{Date: today, Weight: weightKg})
	}

	patch := domain.ProfilePatch{CurrentWeight: &weightKg, WeightLog: &weightLog}
	if err := s.gateway.MergeProfile(ctx, userID, patch); err != nil {
		return nil, apperrors.NewTransport(err, "Could not save your weight. Please try again.")
	}
	profile.CurrentWeight = weightKg
	profile.WeightLog = weightLog
	return profile, nil
}

func clampGoal(v float64) float64 {
	if v < nutrition.MinCalorieGoal {
		return nutrition.MinCalorieGoal
	}
	if v > nutrition.MaxCalorieGoal {
		return nutrition.MaxCalorieGoal
	}
	return v
}

// Summary renders the headline goal numbers for display.
func Summary(p domain.UserProfile) string {
	return fmt.Sprintf("%.0f kcal | P %.0fg C %.0fg F %.0fg",
		p.CalorieGoal, p.MacroGoals.Protein, p.MacroGoals.Carbs, p.MacroGoals.Fats)
}
