package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/nutrition"
	"github.com/arkadyvolkov/nutrition-helper/internal/staging"
)

// MainMenu creates the main menu keyboard.
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 My Day", "today"),
			tgbotapi.NewInlineKeyboardButtonData("📷 Photo Log", "analyze_food"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search Food", "search_food"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Manual Entry", "manual_food"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📆 Copy Yesterday", "copy_yesterday"),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Log Weight", "log_weight"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Goals & Settings", "settings"),
		),
	)
}

// BackToMenu is a single back button.
func BackToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
		),
	)
}

// DayView navigates between dates and offers day-level actions.
func DayView(hasEntries bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{
			tgbotapi.NewInlineKeyboardButtonData("◀️", "date:prev"),
			tgbotapi.NewInlineKeyboardButtonData("Today", "date:today"),
			tgbotapi.NewInlineKeyboardButtonData("▶️", "date:next"),
		},
	}
	if hasEntries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ Remove an entry", "remove_entry"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// RemoveEntries lists one delete button per entry.
func RemoveEntries(entries []domain.FoodEntry) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, e := range entries {
		label := fmt.Sprintf("🗑️ %d. %s", i+1, e.FoodName)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "del:"+e.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Back", "today"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Review renders the AI staging controls: per-item inclusion toggles
// and portion multipliers, the batch meal type and the final actions.
func Review(review staging.Review) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, item := range review.Items {
		check := "⬜"
		if item.Included {
			check = "✅"
		}
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", check, i+1), fmt.Sprintf("rev:toggle:%d", i)),
		}
		for _, m := range staging.PortionMultipliers {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%gx", m), fmt.Sprintf("rev:mult:%d:%g", i, m)))
		}
		rows = append(rows, row)
	}

	var mealRow []tgbotapi.InlineKeyboardButton
	for _, meal := range domain.MealTypes {
		label := string(meal)
		if meal == review.MealType {
			label = "• " + label
		}
		mealRow = append(mealRow, tgbotapi.NewInlineKeyboardButtonData(label, "rev:meal:"+string(meal)))
	}
	rows = append(rows, mealRow)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("✅ Log %d selected", review.IncludedCount()), "rev:log"),
		tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "rev:cancel"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SearchResults lists matched foods.
func SearchResults(foods []domain.FoodItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, f := range foods {
		label := fmt.Sprintf("%s (%.0f kcal/100g)", f.Name, f.Calories)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "food:"+f.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Settings is the goals menu.
func Settings() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔥 Calorie Goal", "set_calories"),
			tgbotapi.NewInlineKeyboardButtonData("🥩 Macro Split", "edit_macros"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏃 Activity", "set_activity"),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Goal", "set_goal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
		),
	)
}

// Genders offers the two modeled BMR variants.
func Genders() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Male", "gender:male"),
			tgbotapi.NewInlineKeyboardButtonData("Female", "gender:female"),
		),
	)
}

// ActivityLevels lists the five TDEE factors.
func ActivityLevels() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sedentary", "activity:sedentary"),
			tgbotapi.NewInlineKeyboardButtonData("Lightly Active", "activity:lightly"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Moderately Active", "activity:moderately"),
			tgbotapi.NewInlineKeyboardButtonData("Very Active", "activity:very"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Extremely Active", "activity:extremely"),
		),
	)
}

// Goals lists the weight objectives.
func Goals() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Lose Weight", "goal:lose"),
			tgbotapi.NewInlineKeyboardButtonData("Maintain", "goal:maintain"),
			tgbotapi.NewInlineKeyboardButtonData("Gain Weight", "goal:gain"),
		),
	)
}

// Rates lists the adjustment rates.
func Rates() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Slow", "rate:slow"),
			tgbotapi.NewInlineKeyboardButtonData("Moderate", "rate:moderate"),
			tgbotapi.NewInlineKeyboardButtonData("Aggressive", "rate:aggressive"),
		),
	)
}

// MacroPresets lists the named splits plus a done action for free-form
// editing.
func MacroPresets() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, p := range nutrition.MacroPresets {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(p.Name, "preset:"+p.Name))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Done", "macro_done"),
		tgbotapi.NewInlineKeyboardButtonData("◀️ Back", "settings"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
