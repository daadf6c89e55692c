// Package bot is the Telegram surface of the tracker. It routes
// updates into the onboarding, diary, photo-review and settings flows;
// all domain logic lives in the services and core packages.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/logger"
	"github.com/arkadyvolkov/nutrition-helper/internal/services"
	"github.com/arkadyvolkov/nutrition-helper/internal/utils"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	profiles *services.ProfileService
	diary    *services.DiaryService
	analysis *services.AnalysisService
	states   state.Manager
}

func NewBot(token string, profiles *services.ProfileService, diary *services.DiaryService, analysis *services.AnalysisService, states state.Manager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Info("bot authorized", "account", api.Self.UserName)
	return &Bot{
		api:      api,
		profiles: profiles,
		diary:    diary,
		analysis: analysis,
		states:   states,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("bot is listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("bot is shutting down")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if err := b.handleUpdate(ctx, update); err != nil {
				logger.Error("failed to handle update", "error", err)
			}
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	var tgUserID, chatID int64
	if update.Message != nil {
		tgUserID = update.Message.From.ID
		chatID = update.Message.Chat.ID
	} else {
		tgUserID = update.CallbackQuery.From.ID
		chatID = update.CallbackQuery.Message.Chat.ID
	}
	userID := fmt.Sprintf("tg:%d", tgUserID)

	if update.CallbackQuery != nil {
		callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
		if _, err := b.api.Request(callback); err != nil {
			logger.Warn("failed to answer callback query", "error", err)
		}
		return b.handleCallback(ctx, chatID, tgUserID, userID, update.CallbackQuery.Data)
	}

	if update.Message.IsCommand() {
		return b.handleCommand(ctx, chatID, tgUserID, userID, update.Message)
	}
	if update.Message.Photo != nil {
		return b.handlePhoto(ctx, chatID, tgUserID, userID, update.Message)
	}
	if update.Message.Text != "" {
		return b.handleText(ctx, chatID, tgUserID, userID, update.Message.Text)
	}
	return nil
}

func (b *Bot) handleCommand(ctx context.Context, chatID, tgUserID int64, userID string, message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		profile, err := b.profiles.Get(ctx, userID)
		if err != nil {
			return b.sendError(ctx, chatID, err)
		}
		if profile == nil {
			return b.startOnboarding(chatID, tgUserID)
		}
		b.states.SetUserState(tgUserID, state.None)
		return b.sendMainMenu(chatID, *profile)
	case "day":
		return b.showDay(ctx, chatID, tgUserID, userID)
	case "cancel":
		b.states.SetUserState(tgUserID, state.None)
		b.states.ClearTempData(tgUserID)
		return b.send(chatID, "Cancelled.", keyboards.BackToMenu())
	case "help":
		return b.send(chatID, helpText, keyboards.BackToMenu())
	default:
		return b.send(chatID, "Unknown command. Use /help to see what I can do.", keyboards.BackToMenu())
	}
}

const helpText = `Here is what I can do:
/start — main menu
/day — show your food log for the active day
/cancel — abort the current action
/help — this message

📷 Photo Log — send a food photo, review the AI estimates, then log the items you keep.
🔍 Search Food — look a food up in the built-in table and log a portion in grams.
✏️ Manual Entry — type "name, calories, protein, carbs, fats" yourself.
📆 Copy Yesterday — re-log everything from the previous day.

While reviewing photo results you can edit any item by typing, e.g.:
  1 name Scrambled Eggs
  1 portion 2 large eggs
  1 calories 210`

func (b *Bot) handleCallback(ctx context.Context, chatID, tgUserID int64, userID, data string) error {
	// Review controls keep their own state machine.
	if strings.HasPrefix(data, "rev:") {
		return b.handleReviewCallback(ctx, chatID, tgUserID, userID, data)
	}

	switch {
	case data == "main_menu":
		b.states.SetUserState(tgUserID, state.None)
		profile, err := b.profiles.Get(ctx, userID)
		if err != nil {
			return b.sendError(ctx, chatID, err)
		}
		if profile == nil {
			return b.startOnboarding(chatID, tgUserID)
		}
		return b.sendMainMenu(chatID, *profile)

	case data == "today":
		return b.showDay(ctx, chatID, tgUserID, userID)
	case strings.HasPrefix(data, "date:"):
		return b.handleDateNav(ctx, chatID, tgUserID, userID, strings.TrimPrefix(data, "date:"))
	case data == "remove_entry":
		return b.showRemoveEntries(ctx, chatID, tgUserID, userID)
	case strings.HasPrefix(data, "del:"):
		return b.handleRemoveEntry(ctx, chatID, tgUserID, userID, strings.TrimPrefix(data, "del:"))
	case data == "copy_yesterday":
		return b.handleCopyYesterday(ctx, chatID, tgUserID, userID)

	case data == "analyze_food":
		b.states.SetUserState(tgUserID, state.WaitingForPhoto)
		return b.send(chatID, "Send me a photo of your food and I'll estimate the nutrition.", keyboards.BackToMenu())

	case data == "search_food":
		b.states.SetUserState(tgUserID, state.WaitingForSearch)
		return b.send(chatID, "Type a food name to search (at least 2 characters).", keyboards.BackToMenu())
	case strings.HasPrefix(data, "food:"):
		return b.handleFoodPicked(chatID, tgUserID, strings.TrimPrefix(data, "food:"))
	case data == "manual_food":
		b.states.SetUserState(tgUserID, state.WaitingForManualEntry)
		return b.send(chatID, "Type the entry as: name, calories, protein, carbs, fats\nExample: Protein shake, 220, 30, 12, 5", keyboards.BackToMenu())

	case data == "log_weight":
		b.states.SetUserState(tgUserID, state.WaitingForWeight)
		return b.send(chatID, "Type your current weight in kg (e.g. 74.5).", keyboards.BackToMenu())

	case data == "settings":
		return b.showSettings(ctx, chatID, tgUserID, userID)
	case data == "set_calories":
		b.states.SetUserState(tgUserID, state.WaitingForCalories)
		return b.send(chatID, "Type your daily calorie goal in kcal (it will be kept between 1200 and 4000).", keyboards.BackToMenu())
	case data == "edit_macros":
		return b.startMacroEditing(ctx, chatID, tgUserID, userID)
	case strings.HasPrefix(data, "preset:"):
		return b.handleMacroPreset(chatID, tgUserID, strings.TrimPrefix(data, "preset:"))
	case data == "macro_done":
		return b.finishMacroEditing(ctx, chatID, tgUserID, userID)
	case data == "set_activity":
		return b.send(chatID, "Pick your activity level:", keyboards.ActivityLevels())
	case data == "set_goal":
		return b.send(chatID, "Pick your primary goal:", keyboards.Goals())

	case strings.HasPrefix(data, "gender:"):
		return b.handleEnumPick(ctx, chatID, tgUserID, userID, "gender", strings.TrimPrefix(data, "gender:"))
	case strings.HasPrefix(data, "activity:"):
		return b.handleEnumPick(ctx, chatID, tgUserID, userID, "activity", strings.TrimPrefix(data, "activity:"))
	case strings.HasPrefix(data, "goal:"):
		return b.handleEnumPick(ctx, chatID, tgUserID, userID, "goal", strings.TrimPrefix(data, "goal:"))
	case strings.HasPrefix(data, "rate:"):
		return b.handleEnumPick(ctx, chatID, tgUserID, userID, "rate", strings.TrimPrefix(data, "rate:"))
	}

	return nil
}

func (b *Bot) handleText(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	switch b.states.GetUserState(tgUserID) {
	case state.OnboardingAge, state.OnboardingHeight, state.OnboardingWeight, state.OnboardingTarget:
		return b.handleOnboardingText(chatID, tgUserID, text)
	case state.ReviewingPhoto:
		return b.handleReviewEdit(ctx, chatID, tgUserID, userID, text)
	case state.WaitingForSearch:
		return b.handleSearchQuery(chatID, tgUserID, text)
	case state.WaitingForPortion:
		return b.handlePortionText(ctx, chatID, tgUserID, userID, text)
	case state.WaitingForManualEntry:
		return b.handleManualEntry(ctx, chatID, tgUserID, userID, text)
	case state.WaitingForWeight:
		return b.handleWeightText(ctx, chatID, tgUserID, userID, text)
	case state.WaitingForCalories:
		return b.handleCaloriesText(ctx, chatID, tgUserID, userID, text)
	case state.EditingMacros:
		return b.handleMacroEdit(chatID, tgUserID, text)
	default:
		return b.send(chatID, "Please use the menu to pick an action.", keyboards.BackToMenu())
	}
}

func (b *Bot) sendMainMenu(chatID int64, profile domain.UserProfile) error {
	text := fmt.Sprintf("🥗 *Nutrition Helper*\n\nDaily goal: %s\n\nWhat would you like to do?",
		services.Summary(profile))
	return b.send(chatID, text, keyboards.MainMenu())
}

// activeDate is the date the user is currently viewing; defaults to
// today.
func (b *Bot) activeDate(tgUserID int64) string {
	if v, ok := b.states.GetTempData(tgUserID, state.KeyDate); ok && utils.ValidDateKey(v) {
		return v
	}
	return utils.TodayKey()
}

func (b *Bot) send(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		// Fall back to plain text when Markdown parsing fails.
		msg.ParseMode = ""
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}

// sendError converts any error into a single user-facing message; the
// triggering action is never retried automatically.
func (b *Bot) sendError(ctx context.Context, chatID int64, err error) error {
	apperrors.Log(ctx, logger.GetLogger(), err)
	return b.send(chatID, apperrors.UserMessage(err), keyboards.BackToMenu())
}
