package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/nutrition"
)

func (b *Bot) showSettings(ctx context.Context, chatID, tgUserID int64, userID string) error {
	profile, err := b.profiles.Get(ctx, userID)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}
	if profile == nil {
		return b.startOnboarding(chatID, tgUserID)
	}

	b.states.SetUserState(tgUserID, state.None)

	var sb strings.Builder
	sb.WriteString("🎯 *Goals & Settings*\n\n")
	fmt.Fprintf(&sb, "Calorie goal: %.0f kcal\n", profile.CalorieGoal)
	fmt.Fprintf(&sb, "Macros: P %.0fg / C %.0fg / F %.0fg\n", profile.MacroGoals.Protein, profile.MacroGoals.Carbs, profile.MacroGoals.Fats)
	fmt.Fprintf(&sb, "Activity: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&sb, "Goal: %s", profile.Goal)
	if profile.Rate != "" {
		fmt.Fprintf(&sb, " (%s)", profile.Rate)
	}
	fmt.Fprintf(&sb, "\nWeight: %.1f kg (target %.1f kg)", profile.CurrentWeight, profile.TargetWeight)
	return b.send(chatID, sb.String(), keyboards.Settings())
}

func (b *Bot) handleWeightText(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	weight, err := parsePositiveFloat(text)
	if err != nil {
		return b.send(chatID, "Please type your weight in kg (e.g. 74.5).", keyboards.BackToMenu())
	}

	profile, err := b.profiles.LogWeight(ctx, userID, weight)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	b.states.SetUserState(tgUserID, state.None)
	delta := profile.CurrentWeight - profile.TargetWeight
	return b.send(chatID,
		fmt.Sprintf("⚖️ Logged %.1f kg. %.1f kg to your target.", weight, math.Abs(delta)),
		keyboards.MainMenu())
}

func (b *Bot) handleCaloriesText(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	goal, err := parsePositiveFloat(text)
	if err != nil {
		return b.send(chatID, "Please type your calorie goal in kcal (e.g. 2200).", keyboards.BackToMenu())
	}

	b.states.SetUserState(tgUserID, state.None)
	return b.applySettings(ctx, chatID, userID, domain.ProfilePatch{CalorieGoal: &goal})
}

// startMacroEditing opens the percentage editor seeded from the current
// gram goals.
func (b *Bot) startMacroEditing(ctx context.Context, chatID, tgUserID int64, userID string) error {
	profile, err := b.profiles.Get(ctx, userID)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}
	if profile == nil {
		return b.startOnboarding(chatID, tgUserID)
	}

	split := splitFromGoals(*profile)
	b.saveMacroSplit(tgUserID, split)
	b.states.SetUserState(tgUserID, state.EditingMacros)
	return b.sendMacroEditor(chatID, split)
}

// handleMacroEdit parses "<field> <percent>", e.g. "protein 40". The
// other fields are rebalanced so the sum stays at 100 where possible.
func (b *Bot) handleMacroEdit(chatID, tgUserID int64, text string) error {
	split, ok := b.loadMacroSplit(tgUserID)
	if !ok {
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "Macro editing has expired. Open Goals & Settings to start over.", keyboards.BackToMenu())
	}

	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) != 2 {
		return b.send(chatID, "Type a field and a percentage, e.g. \"protein 40\".", keyboards.MacroPresets())
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return b.send(chatID, "Type a field and a percentage, e.g. \"protein 40\".", keyboards.MacroPresets())
	}

	var field nutrition.MacroField
	switch fields[0] {
	case "protein":
		field = nutrition.FieldProtein
	case "carbs":
		field = nutrition.FieldCarbs
	case "fats":
		field = nutrition.FieldFats
	default:
		return b.send(chatID, "Fields are: protein, carbs, fats.", keyboards.MacroPresets())
	}

	next := nutrition.RebalancePercentages(split, field, value)
	b.saveMacroSplit(tgUserID, next)
	return b.sendMacroEditor(chatID, next)
}

func (b *Bot) handleMacroPreset(chatID, tgUserID int64, name string) error {
	for _, p := range nutrition.MacroPresets {
		if p.Name == name {
			b.saveMacroSplit(tgUserID, p.Values)
			b.states.SetUserState(tgUserID, state.EditingMacros)
			return b.sendMacroEditor(chatID, p.Values)
		}
	}
	return b.send(chatID, "Unknown preset.", keyboards.MacroPresets())
}

func (b *Bot) finishMacroEditing(ctx context.Context, chatID, tgUserID int64, userID string) error {
	split, ok := b.loadMacroSplit(tgUserID)
	if !ok {
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "Macro editing has expired. Open Goals & Settings to start over.", keyboards.BackToMenu())
	}

	profile, err := b.profiles.SetMacroSplit(ctx, userID, split)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	b.states.SetUserState(tgUserID, state.None)
	return b.send(chatID,
		fmt.Sprintf("✅ Macro goals updated: P %.0fg / C %.0fg / F %.0fg.",
			profile.MacroGoals.Protein, profile.MacroGoals.Carbs, profile.MacroGoals.Fats),
		keyboards.Settings())
}

func (b *Bot) sendMacroEditor(chatID int64, split domain.MacroPercentages) error {
	var sb strings.Builder
	sb.WriteString("🥩 *Macro Split*\n\n")
	fmt.Fprintf(&sb, "Protein: %.0f%%\nCarbs: %.0f%%\nFats: %.0f%%\n", split.Protein, split.Carbs, split.Fats)
	if split.Sum() > 100 {
		fmt.Fprintf(&sb, "\n⚠️ These add up to %.0f%%.\n", split.Sum())
	}
	sb.WriteString("\nPick a preset, or type e.g. \"protein 40\" to change one field. Press Done to apply.")
	return b.send(chatID, sb.String(), keyboards.MacroPresets())
}

// splitFromGoals back-derives percentages from the stored gram goals at
// the current calorie goal; falls back to Balanced when the profile has
// no usable numbers.
func splitFromGoals(profile domain.UserProfile) domain.MacroPercentages {
	if profile.CalorieGoal <= 0 {
		return domain.MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}
	}
	return domain.MacroPercentages{
		Protein: math.Round(profile.MacroGoals.Protein * 4 / profile.CalorieGoal * 100),
		Carbs:   math.Round(profile.MacroGoals.Carbs * 4 / profile.CalorieGoal * 100),
		Fats:    math.Round(profile.MacroGoals.Fats * 9 / profile.CalorieGoal * 100),
	}
}

func (b *Bot) loadMacroSplit(tgUserID int64) (domain.MacroPercentages, bool) {
	raw, ok := b.states.GetTempData(tgUserID, state.KeyMacroSplit)
	if !ok {
		return domain.MacroPercentages{}, false
	}
	var split domain.MacroPercentages
	if err := json.Unmarshal([]byte(raw), &split); err != nil {
		return domain.MacroPercentages{}, false
	}
	return split, true
}

func (b *Bot) saveMacroSplit(tgUserID int64, split domain.MacroPercentages) {
	data, _ := json.Marshal(split)
	b.states.SetTempData(tgUserID, state.KeyMacroSplit, string(data))
}
