package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/services"
)

// onboardingDraft accumulates answers across the onboarding steps. It
// is stored as JSON in temp data so the flow survives restarts when a
// Redis state manager is used.
type onboardingDraft struct {
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Target   float64 `json:"target"`
	Activity string  `json:"activity"`
	Goal     string  `json:"goal"`
	Rate     string  `json:"rate"`
}

func (b *Bot) startOnboarding(chatID, tgUserID int64) error {
	b.states.ClearTempData(tgUserID)
	b.saveOnboardingDraft(tgUserID, onboardingDraft{})
	b.states.SetUserState(tgUserID, state.OnboardingAge)
	return b.send(chatID,
		"👋 Welcome! Let's set up your nutrition goals.\n\nFirst — how old are you?",
		keyboards.BackToMenu())
}

func (b *Bot) handleOnboardingText(chatID, tgUserID int64, text string) error {
	draft, ok := b.loadOnboardingDraft(tgUserID)
	if !ok {
		return b.startOnboarding(chatID, tgUserID)
	}

	switch b.states.GetUserState(tgUserID) {
	case state.OnboardingAge:
		age, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || age < 0 {
			return b.send(chatID, "Please type your age as a whole number (e.g. 34).", keyboards.BackToMenu())
		}
		draft.Age = age
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingGender)
		return b.send(chatID, "Got it. What is your gender? (Used only to pick the BMR formula.)", keyboards.Genders())

	case state.OnboardingHeight:
		height, err := parsePositiveFloat(text)
		if err != nil {
			return b.send(chatID, "Please type your height in cm (e.g. 178).", keyboards.BackToMenu())
		}
		draft.Height = height
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingWeight)
		return b.send(chatID, "And your current weight in kg?", keyboards.BackToMenu())

	case state.OnboardingWeight:
		weight, err := parsePositiveFloat(text)
		if err != nil {
			return b.send(chatID, "Please type your weight in kg (e.g. 82.5).", keyboards.BackToMenu())
		}
		draft.Weight = weight
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingTarget)
		return b.send(chatID, "What weight are you aiming for, in kg?", keyboards.BackToMenu())

	case state.OnboardingTarget:
		target, err := parsePositiveFloat(text)
		if err != nil {
			return b.send(chatID, "Please type your target weight in kg (e.g. 75).", keyboards.BackToMenu())
		}
		draft.Target = target
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingActivity)
		return b.send(chatID, "How active are you on a typical week?", keyboards.ActivityLevels())
	}

	return b.send(chatID, "Please use the buttons for this step.", keyboards.BackToMenu())
}

// handleEnumPick serves the button-driven steps. During onboarding a
// pick advances the flow; outside it the pick is a settings update.
func (b *Bot) handleEnumPick(ctx context.Context, chatID, tgUserID int64, userID, kind, value string) error {
	current := b.states.GetUserState(tgUserID)

	if strings.HasPrefix(current, "onboarding_") {
		return b.handleOnboardingPick(ctx, chatID, tgUserID, userID, kind, value)
	}

	switch kind {
	case "gender":
		g := domain.Gender(value)
		return b.applySettings(ctx, chatID, userID, domain.ProfilePatch{Gender: &g})
	case "activity":
		a := domain.ActivityLevel(value)
		return b.applySettings(ctx, chatID, userID, domain.ProfilePatch{ActivityLevel: &a})
	case "goal":
		g := domain.Goal(value)
		if g == domain.GoalMaintain {
			return b.applySettings(ctx, chatID, userID, domain.ProfilePatch{Goal: &g})
		}
		// Lose/gain need a rate before the goal can be recomputed.
		b.states.SetTempData(tgUserID, state.KeyPendingGoal, value)
		return b.send(chatID, "How fast do you want to get there?", keyboards.Rates())
	case "rate":
		r := domain.WeightGoalRate(value)
		patch := domain.ProfilePatch{Rate: &r}
		if pending, ok := b.states.GetTempData(tgUserID, state.KeyPendingGoal); ok {
			g := domain.Goal(pending)
			patch.Goal = &g
		}
		return b.applySettings(ctx, chatID, userID, patch)
	}
	return nil
}

func (b *Bot) handleOnboardingPick(ctx context.Context, chatID, tgUserID int64, userID, kind, value string) error {
	draft, ok := b.loadOnboardingDraft(tgUserID)
	if !ok {
		return b.startOnboarding(chatID, tgUserID)
	}

	switch {
	case kind == "gender" && b.states.GetUserState(tgUserID) == state.OnboardingGender:
		draft.Gender = value
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingHeight)
		return b.send(chatID, "How tall are you, in cm?", keyboards.BackToMenu())

	case kind == "activity" && b.states.GetUserState(tgUserID) == state.OnboardingActivity:
		draft.Activity = value
		b.saveOnboardingDraft(tgUserID, draft)
		b.states.SetUserState(tgUserID, state.OnboardingGoal)
		return b.send(chatID, "What is your primary goal?", keyboards.Goals())

	case kind == "goal" && b.states.GetUserState(tgUserID) == state.OnboardingGoal:
		draft.Goal = value
		b.saveOnboardingDraft(tgUserID, draft)
		if value == string(domain.GoalMaintain) {
			return b.finishOnboarding(ctx, chatID, tgUserID, userID, draft)
		}
		b.states.SetUserState(tgUserID, state.OnboardingRate)
		return b.send(chatID, "How fast do you want to get there?", keyboards.Rates())

	case kind == "rate" && b.states.GetUserState(tgUserID) == state.OnboardingRate:
		draft.Rate = value
		return b.finishOnboarding(ctx, chatID, tgUserID, userID, draft)
	}

	return b.send(chatID, "Please finish the current step first.", keyboards.BackToMenu())
}

func (b *Bot) finishOnboarding(ctx context.Context, chatID, tgUserID int64, userID string, draft onboardingDraft) error {
	profile, err := b.profiles.Onboard(ctx, userID, services.OnboardingInput{
		Age:           draft.Age,
		Gender:        domain.Gender(draft.Gender),
		Height:        draft.Height,
		CurrentWeight: draft.Weight,
		TargetWeight:  draft.Target,
		ActivityLevel: domain.ActivityLevel(draft.Activity),
		Goal:          domain.Goal(draft.Goal),
		Rate:          domain.WeightGoalRate(draft.Rate),
	})
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	b.states.SetUserState(tgUserID, state.None)
	b.states.ClearTempData(tgUserID)

	text := fmt.Sprintf(
		"✅ You're all set!\n\nDaily goal: *%s*\n\nThe macro split starts at the Balanced preset (30/40/30); you can change it anytime under Goals & Settings.",
		services.Summary(*profile))
	return b.send(chatID, text, keyboards.MainMenu())
}

func (b *Bot) applySettings(ctx context.Context, chatID int64, userID string, patch domain.ProfilePatch) error {
	profile, err := b.profiles.UpdateSettings(ctx, userID, patch)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}
	text := fmt.Sprintf("✅ Updated.\n\nDaily goal: *%s*", services.Summary(*profile))
	return b.send(chatID, text, keyboards.Settings())
}

func (b *Bot) loadOnboardingDraft(tgUserID int64) (onboardingDraft, bool) {
	raw, ok := b.states.GetTempData(tgUserID, state.KeyOnboarding)
	if !ok {
		return onboardingDraft{}, false
	}
	var draft onboardingDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return onboardingDraft{}, false
	}
	return draft, true
}

func (b *Bot) saveOnboardingDraft(tgUserID int64, draft onboardingDraft) {
	data, _ := json.Marshal(draft)
	b.states.SetTempData(tgUserID, state.KeyOnboarding, string(data))
}

func parsePositiveFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("value must be positive")
	}
	return v, nil
}
