package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/foodref"
	"github.com/arkadyvolkov/nutrition-helper/internal/nutrition"
)

// maxSearchResults caps the inline keyboard height.
const maxSearchResults = 10

func (b *Bot) handleSearchQuery(chatID, tgUserID int64, text string) error {
	query := strings.TrimSpace(text)
	if len(query) < foodref.MinQueryLength {
		return b.send(chatID,
			fmt.Sprintf("Please type at least %d characters.", foodref.MinQueryLength),
			keyboards.BackToMenu())
	}

	matches := foodref.Search(query)
	if len(matches) == 0 {
		return b.send(chatID,
			fmt.Sprintf("No foods matching %q. Try another name or use Manual Entry.", query),
			keyboards.BackToMenu())
	}
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return b.send(chatID, "Pick a food:", keyboards.SearchResults(matches))
}

func (b *Bot) handleFoodPicked(chatID, tgUserID int64, foodID string) error {
	food, ok := foodref.ByID(foodID)
	if !ok {
		return b.send(chatID, "That food is no longer available. Please search again.", keyboards.BackToMenu())
	}
	b.states.SetTempData(tgUserID, state.KeyFoodID, foodID)
	b.states.SetUserState(tgUserID, state.WaitingForPortion)
	return b.send(chatID,
		fmt.Sprintf("*%s* has %.0f kcal per 100g.\nHow many grams did you have?", food.Name, food.Calories),
		keyboards.BackToMenu())
}

func (b *Bot) handlePortionText(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	foodID, ok := b.states.GetTempData(tgUserID, state.KeyFoodID)
	if !ok {
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "Please search for a food first.", keyboards.BackToMenu())
	}
	food, ok := foodref.ByID(foodID)
	if !ok {
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "That food is no longer available. Please search again.", keyboards.BackToMenu())
	}

	grams, err := parsePositiveFloat(text)
	if err != nil {
		return b.send(chatID, "Please type the portion in grams (e.g. 150).", keyboards.BackToMenu())
	}

	draft := foodref.Scale(food, grams, nutrition.DefaultMealType(time.Now().Hour()))
	return b.logDraft(ctx, chatID, tgUserID, userID, draft)
}

// handleManualEntry parses "name, calories, protein, carbs, fats".
func (b *Bot) handleManualEntry(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	draft, err := parseManualEntry(text)
	if err != nil {
		return b.send(chatID,
			"Please type the entry as: name, calories, protein, carbs, fats\nExample: Protein shake, 220, 30, 12, 5",
			keyboards.BackToMenu())
	}
	return b.logDraft(ctx, chatID, tgUserID, userID, draft)
}

func parseManualEntry(text string) (domain.EntryDraft, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 5 {
		return domain.EntryDraft{}, fmt.Errorf("expected 5 comma-separated fields, got %d", len(parts))
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return domain.EntryDraft{}, fmt.Errorf("food name is empty")
	}

	nums := make([]float64, 4)
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return domain.EntryDraft{}, fmt.Errorf("invalid nutrient value %q", strings.TrimSpace(p))
		}
		nums[i] = v
	}

	return domain.EntryDraft{
		FoodName:    name,
		Calories:    nums[0],
		Protein:     nums[1],
		Carbs:       nums[2],
		Fats:        nums[3],
		ServingSize: "1 serving",
		MealType:    nutrition.DefaultMealType(time.Now().Hour()),
	}, nil
}

// logDraft writes one draft to the active date and shows the updated
// day.
func (b *Bot) logDraft(ctx context.Context, chatID, tgUserID int64, userID string, draft domain.EntryDraft) error {
	dateKey := b.activeDate(tgUserID)
	if _, err := b.diary.AddEntry(ctx, userID, dateKey, draft); err != nil {
		return b.sendError(ctx, chatID, err)
	}
	b.states.SetUserState(tgUserID, state.None)
	if err := b.send(chatID,
		fmt.Sprintf("✅ Logged *%s* (%.0f kcal) to %s.", draft.FoodName, draft.Calories, draft.MealType),
		keyboards.BackToMenu()); err != nil {
		return err
	}
	return b.showDay(ctx, chatID, tgUserID, userID)
}
