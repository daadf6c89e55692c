package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/ledger"
	"github.com/arkadyvolkov/nutrition-helper/internal/utils"
)

// showDay renders the food log for the active date: entries grouped by
// meal, then totals against the user's goals.
func (b *Bot) showDay(ctx context.Context, chatID, tgUserID int64, userID string) error {
	dateKey := b.activeDate(tgUserID)

	log, err := b.diary.Log(ctx, userID, dateKey)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}
	profile, err := b.profiles.Get(ctx, userID)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	text := renderDay(dateKey, log, profile)
	return b.send(chatID, text, keyboards.DayView(len(log.Entries) > 0))
}

func (b *Bot) handleDateNav(ctx context.Context, chatID, tgUserID int64, userID, direction string) error {
	dateKey := b.activeDate(tgUserID)
	var err error
	switch direction {
	case "prev":
		dateKey, err = utils.ShiftDateKey(dateKey, -1)
	case "next":
		dateKey, err = utils.ShiftDateKey(dateKey, 1)
	case "today":
		dateKey = utils.TodayKey()
	}
	if err != nil {
		dateKey = utils.TodayKey()
	}
	b.states.SetTempData(tgUserID, state.KeyDate, dateKey)
	return b.showDay(ctx, chatID, tgUserID, userID)
}

func (b *Bot) showRemoveEntries(ctx context.Context, chatID, tgUserID int64, userID string) error {
	dateKey := b.activeDate(tgUserID)
	log, err := b.diary.Log(ctx, userID, dateKey)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}
	if len(log.Entries) == 0 {
		return b.send(chatID, "Nothing logged on this day.", keyboards.DayView(false))
	}
	return b.send(chatID, "Pick an entry to remove:", keyboards.RemoveEntries(log.Entries))
}

func (b *Bot) handleRemoveEntry(ctx context.Context, chatID, tgUserID int64, userID, entryID string) error {
	dateKey := b.activeDate(tgUserID)
	if _, err := b.diary.RemoveEntry(ctx, userID, dateKey, entryID); err != nil {
		return b.sendError(ctx, chatID, err)
	}
	return b.showDay(ctx, chatID, tgUserID, userID)
}

// handleCopyYesterday re-logs the previous day's entries onto the
// active date. An empty previous day is reported, not treated as a
// failure.
func (b *Bot) handleCopyYesterday(ctx context.Context, chatID, tgUserID int64, userID string) error {
	dateKey := b.activeDate(tgUserID)
	_, count, err := b.diary.CopyPreviousDay(ctx, userID, dateKey)
	if err != nil {
		if errors.Is(err, ledger.ErrNothingToCopy) {
			return b.send(chatID, "The previous day has no entries to copy.", keyboards.DayView(false))
		}
		return b.sendError(ctx, chatID, err)
	}
	if err := b.send(chatID, fmt.Sprintf("📆 Copied %d entries from the previous day.", count), keyboards.BackToMenu()); err != nil {
		return err
	}
	return b.showDay(ctx, chatID, tgUserID, userID)
}

func renderDay(dateKey string, log domain.DailyLog, profile *domain.UserProfile) string {
	var sb strings.Builder

	title := dateKey
	if dateKey == utils.TodayKey() {
		title = "Today (" + dateKey + ")"
	}
	fmt.Fprintf(&sb, "📋 *%s*\n", title)

	if len(log.Entries) == 0 {
		sb.WriteString("\nNothing logged yet.\n")
	} else {
		for _, meal := range domain.MealTypes {
			entries := ledger.ForMeal(log, meal)
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n*%s*\n", meal)
			for _, e := range entries {
				fmt.Fprintf(&sb, "• %s (%s) — %.0f kcal, P %.1fg C %.1fg F %.1fg\n",
					e.FoodName, e.ServingSize, e.Calories, e.Protein, e.Carbs, e.Fats)
			}
		}
	}

	totals := ledger.Sum(log)
	sb.WriteString("\n")
	if profile != nil {
		fmt.Fprintf(&sb, "🔥 %.0f / %.0f kcal\n", totals.Calories, profile.CalorieGoal)
		fmt.Fprintf(&sb, "🥩 P %.1f / %.0fg  🍞 C %.1f / %.0fg  🥑 F %.1f / %.0fg",
			totals.Protein, profile.MacroGoals.Protein,
			totals.Carbs, profile.MacroGoals.Carbs,
			totals.Fats, profile.MacroGoals.Fats)
	} else {
		fmt.Fprintf(&sb, "🔥 %.0f kcal  P %.1fg C %.1fg F %.1fg",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fats)
	}
	return sb.String()
}
